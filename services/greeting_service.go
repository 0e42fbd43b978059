package services

import (
	"fmt"
	"log/slog"
	"os"

	"goldentouch-backend/reports"
	"goldentouch-backend/store"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// GreetingService texts a birthday message to clients whose birthday is
// today. Sending is skipped unless Twilio credentials are configured, so
// the scheduler is safe to start in any environment.
type GreetingService struct {
	store  *store.Store
	client *twilio.RestClient
	from   string
}

func NewGreetingService(s *store.Store) *GreetingService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	var client *twilio.RestClient
	if accountSid != "" && authToken != "" {
		client = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		})
	}

	return &GreetingService{
		store:  s,
		client: client,
		from:   os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

// StartScheduler runs the greeting job every day at 9 AM.
func (s *GreetingService) StartScheduler() *cron.Cron {
	c := cron.New()
	if _, err := c.AddFunc("0 9 * * *", s.SendBirthdayGreetings); err != nil {
		slog.Error("failed to schedule birthday greetings", "error", err)
		return c
	}
	c.Start()
	slog.Info("birthday greeting scheduler started")
	return c
}

func (s *GreetingService) SendBirthdayGreetings() {
	clients, err := s.store.ListClients()
	if err != nil {
		slog.Error("failed to fetch clients for greetings", "error", err)
		return
	}

	celebrants := reports.BirthdaysOn(clients, reports.Today())
	if len(celebrants) == 0 {
		return
	}

	for _, client := range celebrants {
		if client.Phone == "" {
			slog.Info("birthday today, no phone on record", "client", client.Name)
			continue
		}
		if s.client == nil {
			slog.Info("birthday today, twilio not configured", "client", client.Name)
			continue
		}

		message := fmt.Sprintf("Feliz aniversário, %s! 🎉 O Golden Touch deseja um dia maravilhoso. Agende um mimo especial com a gente!", client.Name)

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(client.Phone)
		params.SetFrom(s.from)
		params.SetBody(message)

		resp, err := s.client.Api.CreateMessage(params)
		if err != nil {
			slog.Error("failed to send birthday greeting", "client", client.Name, "error", err)
			continue
		}
		if resp.Sid != nil {
			slog.Info("birthday greeting sent", "client", client.Name, "sid", *resp.Sid)
		} else {
			slog.Info("birthday greeting sent, no sid returned", "client", client.Name)
		}
	}
}
