package models_test

import (
	"testing"

	"crm-portal-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
)

func TestParseTemplateFormat(t *testing.T) {
	assert.Equal(t, models.TemplateFormatTextBased, models.ParseTemplateFormat("Text Based"))
	assert.Equal(t, models.TemplateFormatHTML, models.ParseTemplateFormat("HTML"))
	assert.Equal(t, models.TemplateFormatFileBased, models.ParseTemplateFormat("File Based"))

	// the mapping is total, unrecognized labels fall back to the default
	assert.Equal(t, models.DefaultTemplateFormat, models.ParseTemplateFormat(""))
	assert.Equal(t, models.DefaultTemplateFormat, models.ParseTemplateFormat("html"))
	assert.Equal(t, models.DefaultTemplateFormat, models.ParseTemplateFormat("Markdown"))
}

func TestTemplateFormatLabelRoundTrip(t *testing.T) {
	for _, format := range []models.TemplateFormat{
		models.TemplateFormatTextBased,
		models.TemplateFormatHTML,
		models.TemplateFormatFileBased,
	} {
		assert.True(t, format.IsValid())
		assert.Equal(t, format, models.ParseTemplateFormat(format.Label()))
	}
	assert.False(t, models.TemplateFormat("PDF").IsValid())
}

func TestParseCallDirection(t *testing.T) {
	assert.Equal(t, models.CallDirectionInbound, models.ParseCallDirection("Incoming"))
	assert.Equal(t, models.CallDirectionOutbound, models.ParseCallDirection("Outgoing"))

	assert.Equal(t, models.DefaultCallDirection, models.ParseCallDirection(""))
	assert.Equal(t, models.DefaultCallDirection, models.ParseCallDirection("INBOUND"))

	assert.Equal(t, "Incoming", models.CallDirectionInbound.Label())
	assert.Equal(t, "Outgoing", models.CallDirectionOutbound.Label())
	assert.False(t, models.CallDirection("MISSED").IsValid())
}

func TestParseCallStatus(t *testing.T) {
	assert.Equal(t, models.CallStatusPlanned, models.ParseCallStatus("Planned"))
	assert.Equal(t, models.CallStatusCompleted, models.ParseCallStatus("Completed"))
	assert.Equal(t, models.CallStatusCancelled, models.ParseCallStatus("Cancelled"))

	assert.Equal(t, models.DefaultCallStatus, models.ParseCallStatus("Rescheduled"))

	for _, status := range []models.CallStatus{
		models.CallStatusPlanned,
		models.CallStatusCompleted,
		models.CallStatusCancelled,
	} {
		assert.True(t, status.IsValid())
		assert.Equal(t, status, models.ParseCallStatus(status.Label()))
	}
}

func TestParseLeadStatus(t *testing.T) {
	assert.Equal(t, models.LeadStatusNew, models.ParseLeadStatus("New"))
	assert.Equal(t, models.LeadStatusContacted, models.ParseLeadStatus("Contacted"))
	assert.Equal(t, models.LeadStatusQualified, models.ParseLeadStatus("Qualified"))
	assert.Equal(t, models.LeadStatusDisqualified, models.ParseLeadStatus("Disqualified"))
	assert.Equal(t, models.LeadStatusConverted, models.ParseLeadStatus("Converted"))

	assert.Equal(t, models.DefaultLeadStatus, models.ParseLeadStatus("Lukewarm"))

	for _, status := range []models.LeadStatus{
		models.LeadStatusNew,
		models.LeadStatusContacted,
		models.LeadStatusQualified,
		models.LeadStatusDisqualified,
		models.LeadStatusConverted,
	} {
		assert.True(t, status.IsValid())
		assert.Equal(t, status, models.ParseLeadStatus(status.Label()))
	}
	assert.False(t, models.LeadStatus("ARCHIVED").IsValid())
}

func TestParseLeadSource(t *testing.T) {
	assert.Equal(t, models.LeadSourceLinkedIn, models.ParseLeadSource("LinkedIn"))
	assert.Equal(t, models.LeadSourceWebsite, models.ParseLeadSource("Website"))
	assert.Equal(t, models.LeadSourceReferral, models.ParseLeadSource("Referral"))
	assert.Equal(t, models.LeadSourceEvent, models.ParseLeadSource("Event"))
	assert.Equal(t, models.LeadSourceOther, models.ParseLeadSource("Other"))

	assert.Equal(t, models.DefaultLeadSource, models.ParseLeadSource("Linkedin"))
	assert.Equal(t, models.DefaultLeadSource, models.ParseLeadSource(""))

	for _, source := range []models.LeadSource{
		models.LeadSourceLinkedIn,
		models.LeadSourceWebsite,
		models.LeadSourceReferral,
		models.LeadSourceEvent,
		models.LeadSourceOther,
	} {
		assert.True(t, source.IsValid())
		assert.Equal(t, source, models.ParseLeadSource(source.Label()))
	}
}

func TestParseChannelMedium(t *testing.T) {
	assert.Equal(t, models.ChannelMediumEmail, models.ParseChannelMedium("Email"))
	assert.Equal(t, models.ChannelMediumSocial, models.ParseChannelMedium("Social Media"))
	assert.Equal(t, models.ChannelMediumPrint, models.ParseChannelMedium("Print"))
	assert.Equal(t, models.ChannelMediumPhone, models.ParseChannelMedium("Phone"))

	assert.Equal(t, models.DefaultChannelMedium, models.ParseChannelMedium("TV"))

	for _, medium := range []models.ChannelMedium{
		models.ChannelMediumEmail,
		models.ChannelMediumSocial,
		models.ChannelMediumPrint,
		models.ChannelMediumPhone,
	} {
		assert.True(t, medium.IsValid())
		assert.Equal(t, medium, models.ParseChannelMedium(medium.Label()))
	}
	assert.False(t, models.ChannelMedium("BILLBOARD").IsValid())
}
