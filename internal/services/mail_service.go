package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	BaseURL  string
	Enabled  bool
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		log.Println("⚠️ MailService disabled: Missing SMTP environment variables.")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		BaseURL:  baseURL,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: satlink <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		err := smtp.SendMail(addr, auth, s.From, to, msg)
		if err != nil {
			log.Printf("❌ Failed to send email to %v: %v", to, err)
		} else {
			log.Printf("✅ Email sent to %v: %s", to, subject)
		}
	}()
}

var inviteTemplate = template.Must(template.New("invite").Parse(`
<p>Hi,</p>
<p><b>{{.Inviter}}</b> invited you to join satlink.</p>
{{if gt .Gift 0}}<p>They gifted you <b>{{.Gift}} sats</b> to get started.</p>{{end}}
<p><a href="{{.Link}}">Accept the invitation</a> — the link is valid for 30 days.</p>
`))

// SendInviteEmail 给被邀请人发注册邀请邮件
func (s *MailService) SendInviteEmail(email, inviterName, token string, gift int64) {
	var buf bytes.Buffer
	err := inviteTemplate.Execute(&buf, map[string]interface{}{
		"Inviter": inviterName,
		"Gift":    gift,
		"Link":    fmt.Sprintf("%s/invite?email=%s&token=%s", s.BaseURL, email, token),
	})
	if err != nil {
		log.Printf("Error rendering invite email: %v", err)
		return
	}
	s.sendAsync([]string{email}, inviterName+" invited you to satlink", buf.String())
}
