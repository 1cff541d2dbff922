package mailer

import (
	"github.com/oksasatya/go-social-network/pkg/mailer/templates"
)

func renderJob(job EmailJob) (string, string, string, error) {
	data := job.Data
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Email"]; !ok {
		data["Email"] = job.To
	}
	return templates.Render(job.Template, data)
}
