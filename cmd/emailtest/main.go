package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tendant/simple-hrms/pkg/notification"
)

func main() {
	host := flag.String("host", "localhost", "SMTP server host")
	port := flag.Int("port", 1025, "SMTP server port")
	username := flag.String("user", "", "SMTP username")
	password := flag.String("pass", "", "SMTP password")
	from := flag.String("from", "", "From email address")
	to := flag.String("to", "", "To email address")
	useTLS := flag.Bool("tls", false, "use TLS")
	flag.Parse()

	if *from == "" || *to == "" {
		fmt.Println("Error: from and to email addresses are required")
		os.Exit(1)
	}

	mailer, err := notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     *host,
		Port:     *port,
		Username: *username,
		Password: *password,
		From:     *from,
		TLS:      *useTLS,
	})
	if err != nil {
		log.Fatalf("Failed to create mail client: %v", err)
	}

	err = mailer.SendEmail(context.Background(), notification.EmailRequest{
		To:        []string{*to},
		FromEmail: *from,
		FromName:  "Simple-HRMS",
		Subject:   "Test Email from Simple-HRMS",
		Body:      "This is a test email from the Simple-HRMS email testing tool.",
	})
	if err != nil {
		log.Fatalf("Failed to send email: %v", err)
	}

	fmt.Println("Email sent successfully!")
}
