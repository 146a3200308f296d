package utils

import (
	"bytes"
	"html/template"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// ReservationConfirmationData dữ liệu cho template email
type ReservationConfirmationData struct {
	ReservationCode string
	ShowTitle       string
	DomeName        string
	ShowTime        string
	Seats           string
	TicketCount     int
	DetailLink      string
}

// SendReservationConfirmationEmail gửi email xác nhận đặt chỗ (async),
// đính kèm QR check-in cho từng vé
func SendReservationConfirmationEmail(to string, data ReservationConfirmationData, qrAttachments map[string][]byte) {
	go func() {
		tmpl, err := template.ParseFiles("templates/reservation_confirmation.html")
		if err != nil {
			log.Printf("failed to load email template: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("failed to render email template: %v", err)
			return
		}

		host := os.Getenv("SMTP_HOST")
		port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Reservation confirmed #"+data.ReservationCode)
		m.SetBody("text/html", body.String())

		for filename, qrBytes := range qrAttachments {
			payload := qrBytes
			m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(payload))
				return err
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email: %v", err)
		}
	}()
}
