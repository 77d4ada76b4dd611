package notify

import (
	"fmt"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"github.com/luxepet-health/clinic-api/internal/models"
	"github.com/luxepet-health/clinic-api/internal/timezone"
)

// SMTPMailer envía los correos transaccionales de la clínica. No hay
// garantía de entrega: el dispatcher registra el error y sigue.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

func NewSMTPMailer(host, port, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass, From: from}
}

func (m *SMTPMailer) send(to, subject, html string) error {
	var msg strings.Builder
	msg.WriteString("From: \"Luxepet Health\" <" + m.From + ">\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(html)

	addr := m.Host + ":" + m.Port
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg.String()))
}

func formatDateTime(t time.Time) string {
	return t.In(timezone.Location()).Format("02/01/2006 03:04 PM")
}

// googleCalendarLink arma el enlace de evento de una hora a partir del
// instante de la cita y su comentario.
func googleCalendarLink(at time.Time, comentario string) string {
	const layout = "20060102T150405Z"
	start := at.UTC().Format(layout)
	end := at.UTC().Add(time.Hour).Format(layout)
	return fmt.Sprintf(
		"https://calendar.google.com/calendar/r/eventedit?text=Cita&dates=%s/%s&details=%s",
		start, end, url.QueryEscape(comentario),
	)
}

func (m *SMTPMailer) SendBooked(cita *models.Appointment) error {
	link := googleCalendarLink(cita.ScheduledAt, cita.Note)
	html := fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; padding: 20px;">
            <h1 style="color: #4CAF50;">Cita Agendada</h1>
            <p>Hola <strong>%s</strong>,</p>
            <p>Tu cita ha sido agendada con éxito.</p>
            <p><strong>Fecha y hora:</strong> %s</p>
            <p><strong>Comentario:</strong> %s</p>
            <p>Puedes añadir tu cita a tu calendario:</p>
            <ul><li><a href="%s" style="color: #4CAF50;">Agregar al Calendario de Google</a></li></ul>
        </div>`,
		cita.ClientName, formatDateTime(cita.ScheduledAt), cita.Note, link,
	)
	return m.send(cita.ContactEmail, "Cita Agendada con Éxito", html)
}

func (m *SMTPMailer) SendCancelled(cita *models.Appointment, deletedAt time.Time) error {
	html := fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; padding: 20px;">
            <h1 style="color: #f44336;">Cita Eliminada</h1>
            <p>Hola <strong>%s</strong>,</p>
            <p>Tu cita programada para el <strong>%s</strong> ha sido eliminada.</p>
            <p><strong>Comentario:</strong> %s</p>
            <p>Fecha y hora de eliminación: %s</p>
        </div>`,
		cita.ClientName, formatDateTime(cita.ScheduledAt), cita.Note, formatDateTime(deletedAt),
	)
	return m.send(cita.ContactEmail, "Cita Eliminada", html)
}

func (m *SMTPMailer) SendRescheduled(prev, next *models.Appointment) error {
	html := fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; padding: 20px;">
            <h1 style="color: #4CAF50;">Cita reagendada</h1>
            <p>Hola <strong>%s</strong>,</p>
            <p><strong>Cita anterior:</strong> %s - Comentario: %s</p>
            <p><strong>Nueva cita:</strong> %s - Comentario: %s</p>
            <p>¡Te esperamos!</p>
        </div>`,
		next.ClientName,
		formatDateTime(prev.ScheduledAt), prev.Note,
		formatDateTime(next.ScheduledAt), next.Note,
	)
	return m.send(next.ContactEmail, "Cita reagendada con Éxito", html)
}

func (m *SMTPMailer) SendAttended(to, cliente string) error {
	html := fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; padding: 20px;">
            <h1 style="color: #4CAF50;">Su mascota ha sido atendida</h1>
            <p>Hola <strong>%s</strong>,</p>
            <p>Su mascota ha sido atendida y está lista para ser recogida.</p>
            <p>¡Gracias por confiar en nosotros!</p>
        </div>`,
		cliente,
	)
	return m.send(to, "Su mascota ha sido atendida", html)
}

var _ Mailer = (*SMTPMailer)(nil)
