package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewforge/backoffice/internal/model"
)

func TestPersonDerivePrimaries(t *testing.T) {
	t.Run("flagged primary wins and is normalized", func(t *testing.T) {
		p := &model.Person{
			Emails: model.PersonEmails{
				{Value: "Office@Acme.Example"},
				{Value: " Sam@Acme.Example ", IsPrimary: true},
			},
			Phones: model.PersonPhones{
				{Value: "(212) 555-0142", IsPrimary: true},
				{Value: "212-555-0199"},
			},
		}

		p.DerivePrimaries()

		assert.Equal(t, "sam@acme.example", *p.PrimaryEmail)
		assert.Equal(t, "+12125550142", *p.PrimaryPhoneE164)
		assert.Equal(t, "office@acme.example", p.Emails[0].Normalized)
		assert.False(t, p.Emails[0].IsPrimary)
		assert.True(t, p.Emails[1].IsPrimary)
		assert.False(t, p.Phones[1].IsPrimary)
	})

	t.Run("first usable entry is elected when nothing is flagged", func(t *testing.T) {
		p := &model.Person{
			Emails: model.PersonEmails{
				{Value: "   "},
				{Value: "crew@acme.example"},
			},
		}

		p.DerivePrimaries()

		assert.Equal(t, "crew@acme.example", *p.PrimaryEmail)
		assert.True(t, p.Emails[1].IsPrimary)
		assert.Nil(t, p.PrimaryPhoneE164)
	})

	t.Run("competing primary flags collapse to one", func(t *testing.T) {
		p := &model.Person{
			Emails: model.PersonEmails{
				{Value: "a@acme.example", IsPrimary: true},
				{Value: "b@acme.example", IsPrimary: true},
			},
		}

		p.DerivePrimaries()

		assert.Equal(t, "a@acme.example", *p.PrimaryEmail)
		assert.True(t, p.Emails[0].IsPrimary)
		assert.False(t, p.Emails[1].IsPrimary)
	})

	t.Run("no usable entries clears the primaries", func(t *testing.T) {
		email := "stale@acme.example"
		p := &model.Person{
			PrimaryEmail: &email,
			Phones:       model.PersonPhones{{Value: "n/a"}},
		}

		p.DerivePrimaries()

		assert.Nil(t, p.PrimaryEmail)
		assert.Nil(t, p.PrimaryPhoneE164)
	})
}
