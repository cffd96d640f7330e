package dispatch

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/customtrack-backend/internal/domain"
)

const systemAuthor = "system"

// subject is the entity state a message describes, captured at write time so
// deleted entities can still be described after commit.
type subject struct {
	Name    string
	Kind    string
	Status  string
	Version string
}

func newSubject(entity domain.Trackable) subject {
	fields := entity.ToFieldMap()
	return subject{
		Name:    entity.DisplayName(),
		Kind:    fields.String(domain.FieldKind),
		Status:  fields.String(domain.FieldStatus),
		Version: fields.String(domain.FieldVersion),
	}
}

// renderSubject builds the email subject line: "<tag> <type label> • <name>".
func (s *Service) renderSubject(sub subject, n domain.Notification) string {
	line := n.Type.Label() + " • " + sub.Name
	if s.cfg.SubjectTag != "" {
		line = s.cfg.SubjectTag + " " + line
	}
	return line
}

func renderBody(sub subject, n domain.Notification, author string) string {
	version := sub.Version
	if version == "" {
		version = "-"
	}

	var b strings.Builder
	b.WriteString(n.Message)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Customization: %s (%s)\n", sub.Name, sub.Kind)
	fmt.Fprintf(&b, "Author: %s\n", author)
	fmt.Fprintf(&b, "Status: %s | Version: %s\n", sub.Status, version)
	return b.String()
}

func renderWebhookText(subjectLine, body string) string {
	return "🔔 " + subjectLine + "\n" + body
}
