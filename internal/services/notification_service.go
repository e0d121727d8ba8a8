// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/redoak/realty-backend/internal/config"
	"github.com/redoak/realty-backend/internal/models"
)

type NotificationService struct {
	db     *gorm.DB
	config *config.Config
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(db *gorm.DB, config *config.Config) *NotificationService {
	return &NotificationService{
		db:     db,
		config: config,
	}
}

// SendNewLeadNotification emails the attributed agent about an inbound lead.
func (s *NotificationService) SendNewLeadNotification(lead *models.Lead) error {
	if lead.RealtorID == nil {
		return nil
	}

	agent, email, err := s.agentContact(*lead.RealtorID)
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"AgentName":  agent.DisplayName,
		"LeadName":   lead.Name,
		"LeadEmail":  lead.Email,
		"LeadPhone":  lead.Phone,
		"LeadSource": lead.Source,
		"LeadURL":    fmt.Sprintf("%s/dashboard/leads/%s", s.config.Frontend.BaseURL, lead.ID),
	}

	subject := "New Lead - " + lead.Name
	tmpl := s.getEmailTemplate("new_lead")
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(email, subject, body)
}

// SendCommissionCreatedNotification emails the agent when a converted lead
// produces a commission record.
func (s *NotificationService) SendCommissionCreatedNotification(commission *models.Commission) error {
	agent, email, err := s.agentContact(commission.AgentID)
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"AgentName":     agent.DisplayName,
		"Client":        commission.Client,
		"Amount":        commission.Amount,
		"CommissionURL": fmt.Sprintf("%s/dashboard/commissions/%s", s.config.Frontend.BaseURL, commission.ID),
	}

	subject := "Commission Recorded - " + commission.Client
	tmpl := s.getEmailTemplate("commission_created")
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(email, subject, body)
}

func (s *NotificationService) agentContact(agentID uuid.UUID) (*models.Agent, string, error) {
	var agent models.Agent
	if err := s.db.Preload("User").First(&agent, "id = ?", agentID).Error; err != nil {
		return nil, "", fmt.Errorf("agent not found: %w", err)
	}
	return &agent, agent.User.Email, nil
}

// Helper methods
func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPUsername == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("Email sending skipped, SMTP not configured")
		return nil
	}

	// Setup authentication
	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	// Compose message
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	// In a real implementation, these would be loaded from files or database
	templates := map[string]EmailTemplate{
		"new_lead": {
			Subject: "New Lead",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>New Lead</h2>
	<p>Hello {{.AgentName}},</p>
	<p>{{.LeadName}} ({{.LeadEmail}}{{if .LeadPhone}}, {{.LeadPhone}}{{end}}) just reached out via {{.LeadSource}}.</p>
	<a href="{{.LeadURL}}">View Lead</a>
	<p>Best regards,<br>Realty Back Office Team</p>
</body>
</html>`,
		},
		"commission_created": {
			Subject: "Commission Recorded",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Commission Recorded</h2>
	<p>Hello {{.AgentName}},</p>
	<p>A commission for client {{.Client}} has been recorded and is pending review.</p>
	<a href="{{.CommissionURL}}">View Commission</a>
	<p>Best regards,<br>Realty Back Office Team</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	// Default template
	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.Message}}</p>",
	}
}
