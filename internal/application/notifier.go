package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
	repo "github.com/oksasatya/go-social-network/internal/domain/repository"
	"github.com/oksasatya/go-social-network/pkg/helpers"
	"github.com/oksasatya/go-social-network/pkg/mailer"
	tpl "github.com/oksasatya/go-social-network/pkg/mailer/templates"
)

// JobPublisher is satisfied by helpers.RabbitPublisher.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// RequestMeta is the client information kept in audit rows.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// Notifier performs the best-effort side effects of account events:
// audit rows and email jobs. Failures are logged, never returned.
type Notifier struct {
	Audit       repo.AuditRepository
	Mail        JobPublisher
	AppName     string
	CompanyName string
	SupportURL  string
	Logger      *logrus.Logger
}

const sideEffectTimeout = 3 * time.Second

func (n *Notifier) audit(ctx context.Context, u *entity.User, email, action string, meta RequestMeta, md map[string]any) {
	if n == nil || n.Audit == nil {
		return
	}
	ev := entity.AuditEvent{
		Email:     email,
		Action:    action,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		Metadata:  md,
	}
	if u != nil {
		ev.UserID = u.ID
		if ev.Email == "" {
			ev.Email = u.Email
		}
	}
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()
	err := n.Audit.Record(c, ev)
	helpers.ObserveSideEffect("audit", err)
	if err != nil {
		helpers.LogWarn(n.Logger, "audit record failed", err, logrus.Fields{"action": action})
	}
}

func (n *Notifier) email(ctx context.Context, u *entity.User, template string) {
	if n == nil || n.Mail == nil || u == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: template,
		Data:     tpl.NewEmailData(n.AppName, n.CompanyName, n.SupportURL, u.Name, u.Email),
	}
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()
	err := n.Mail.PublishJSON(c, job)
	helpers.ObserveSideEffect("email", err)
	if err != nil {
		helpers.LogWarn(n.Logger, "failed to publish email job", err, logrus.Fields{"template": template, "user_id": u.ID})
	}
}
