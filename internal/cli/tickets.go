package cli

import (
	"context"
	"errors"
	"flag"

	"github.com/relaxrp/storefront/internal/api"
	"github.com/relaxrp/storefront/internal/domain"
)

func (a *App) ticketCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: storefront ticket create|list|show|reply|status")
	}

	switch args[0] {
	case "create":
		return a.ticketCreate(ctx, args[1:])
	case "list":
		return a.ticketList(ctx, args[1:])
	case "show":
		return a.ticketShow(ctx, args[1:])
	case "reply":
		return a.ticketReply(ctx, args[1:])
	case "status":
		return a.ticketStatus(ctx, args[1:])
	default:
		return errors.New("usage: storefront ticket create|list|show|reply|status")
	}
}

func (a *App) ticketCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ticket create", flag.ContinueOnError)
	subject := fs.String("subject", "", "ticket subject")
	message := fs.String("message", "", "ticket body")
	orderID := fs.String("order", "", "related order id (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *subject == "" || *message == "" {
		return errors.New("subject and message are required")
	}

	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	ticket, errCreate := a.api.CreateTicket(ctx, api.TicketInput{
		Subject: *subject,
		Message: *message,
		OrderID: *orderID,
	}, user.Email)
	if errCreate != nil {
		return errCreate
	}

	a.printf("created ticket %s\n", ticket.ID)
	return nil
}

func (a *App) ticketList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ticket list", flag.ContinueOnError)
	all := fs.Bool("all", false, "list every ticket (admin only)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	var tickets []domain.Ticket
	if *all {
		tickets, err = a.api.ListAllTickets(ctx, user.Email)
	} else {
		tickets, err = a.api.ListTickets(ctx, user.Email)
	}
	if err != nil {
		return err
	}

	if len(tickets) == 0 {
		a.printf("no tickets\n")
		return nil
	}
	for _, t := range tickets {
		a.printf("%s  [%s]  %s\n", t.ID, t.Status, t.Subject)
	}
	return nil
}

func (a *App) ticketShow(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: storefront ticket show <id>")
	}

	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	ticket, errGet := a.api.GetTicket(ctx, args[0], user.Email)
	if errGet != nil {
		return errGet
	}

	a.printf("%s  [%s]\n", ticket.Subject, ticket.Status)
	for _, msg := range ticket.Messages {
		who := "you"
		if msg.Sender == "admin" {
			who = "support"
		}
		a.printf("  %s (%s): %s\n", who, msg.CreatedAt.Format("2006-01-02 15:04"), msg.Message)
	}
	return nil
}

func (a *App) ticketReply(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ticket reply", flag.ContinueOnError)
	message := fs.String("message", "", "reply body")
	if len(args) < 1 {
		return errors.New("usage: storefront ticket reply <id> -message <text>")
	}
	id := args[0]
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}
	if *message == "" {
		return errors.New("message is required")
	}

	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	errReply := a.api.ReplyToTicket(ctx, id, api.TicketReply{
		Message: *message,
		IsAdmin: user.IsAdmin,
	}, user.Email)
	if errReply != nil {
		return errReply
	}

	a.printf("reply sent\n")
	return nil
}

func (a *App) ticketStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: storefront ticket status <id> open|in_progress|closed")
	}

	user, err := a.requireUser(ctx)
	if err != nil {
		return err
	}

	if errUpdate := a.api.UpdateTicketStatus(ctx, args[0], args[1], user.Email); errUpdate != nil {
		return errUpdate
	}

	a.printf("ticket %s is now %s\n", args[0], args[1])
	return nil
}
