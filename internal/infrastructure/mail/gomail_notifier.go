package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/wazard-api/internal/application/ports"
	"github.com/jhoicas/wazard-api/pkg/config"
)

var _ ports.WelcomeNotifier = (*GomailNotifier)(nil)

const welcomeSubject = "Bienvenido a wazard"

// El nombre lo elige el usuario: html/template lo escapa.
var welcomeHTMLTemplate = template.Must(template.New("welcome").Parse(
	`<p>Hola <b>{{.}}</b>,</p><p>Tu cuenta en wazard fue creada. Ya puedes registrar tu asistencia.</p>`))

// Sender lo implementa *gomail.Dialer.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// GomailNotifier envía el correo de bienvenida por SMTP.
type GomailNotifier struct {
	sender Sender
	from   string
}

// NewGomailNotifier construye el notifier con un dialer SMTP a partir de la configuración.
func NewGomailNotifier(cfg config.MailConfig) *GomailNotifier {
	return NewGomailNotifierWithSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From)
}

// NewGomailNotifierWithSender permite inyectar el Sender.
func NewGomailNotifierWithSender(sender Sender, from string) *GomailNotifier {
	return &GomailNotifier{sender: sender, from: from}
}

// NewWelcomeNotifier devuelve el notifier SMTP, o uno no-op si no hay servidor configurado.
func NewWelcomeNotifier(cfg config.MailConfig) ports.WelcomeNotifier {
	if !cfg.Enabled() {
		return ports.NoopNotifier{}
	}
	return NewGomailNotifier(cfg)
}

// NotifyJoined envía el correo de bienvenida a email.
func (n *GomailNotifier) NotifyJoined(ctx context.Context, email, userName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if email == "" {
		return fmt.Errorf("mail: destinatario vacío")
	}
	msg, err := n.welcomeMessage(email, userName)
	if err != nil {
		return err
	}
	if err := n.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("mail: enviar bienvenida: %w", err)
	}
	return nil
}

func welcomeHTML(userName string) (string, error) {
	var buf bytes.Buffer
	if err := welcomeHTMLTemplate.Execute(&buf, userName); err != nil {
		return "", fmt.Errorf("mail: plantilla de bienvenida: %w", err)
	}
	return buf.String(), nil
}

func (n *GomailNotifier) welcomeMessage(email, userName string) (*gomail.Message, error) {
	body, err := welcomeHTML(userName)
	if err != nil {
		return nil, err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", welcomeSubject)
	msg.SetBody("text/plain", fmt.Sprintf("Hola %s,\n\nTu cuenta en wazard fue creada. Ya puedes registrar tu asistencia.\n", userName))
	msg.AddAlternative("text/html", body)
	return msg, nil
}
