// internal/email/mailer/datastore_migrated.go
package mailer

import "github.com/crewforge/backoffice/internal/email"

// DatastoreMigratedTemplateData contains data for the migration notice template
type DatastoreMigratedTemplateData struct {
	OwnerName        string
	OrganizationName string
	DatastoreType    string
	CompletedAt      string
}

// SendDatastoreMigratedEmail notifies an organization owner that the
// datastore switch finished.
func SendDatastoreMigratedEmail(s *email.Service, to string, data DatastoreMigratedTemplateData) error {
	emailData := email.EmailData{
		To:           to,
		FromName:     "CrewForge Backoffice",
		Subject:      "Your organization's datastore migration is complete",
		TemplateName: "datastore_migrated",
		TemplateData: data,
	}

	return s.SendEmail(emailData)
}
