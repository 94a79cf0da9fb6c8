package models

// TemplateFormat defines the storage enumeration for template formats
type TemplateFormat string

const (
	TemplateFormatTextBased TemplateFormat = "TEXT_BASED"
	TemplateFormatHTML      TemplateFormat = "HTML"
	TemplateFormatFileBased TemplateFormat = "FILE_BASED"
)

// DefaultTemplateFormat is the documented fallback for unrecognized labels
const DefaultTemplateFormat = TemplateFormatTextBased

// templateFormatLabels maps human-facing labels onto storage values
var templateFormatLabels = map[string]TemplateFormat{
	"Text Based": TemplateFormatTextBased,
	"HTML":       TemplateFormatHTML,
	"File Based": TemplateFormatFileBased,
}

// ParseTemplateFormat maps a human-facing label to its storage value.
// The mapping is total: unknown labels resolve to DefaultTemplateFormat.
func ParseTemplateFormat(label string) TemplateFormat {
	if f, ok := templateFormatLabels[label]; ok {
		return f
	}
	return DefaultTemplateFormat
}

// Label returns the human-facing label for the format
func (f TemplateFormat) Label() string {
	switch f {
	case TemplateFormatHTML:
		return "HTML"
	case TemplateFormatFileBased:
		return "File Based"
	default:
		return "Text Based"
	}
}

// IsValid checks if the TemplateFormat is a known storage value
func (f TemplateFormat) IsValid() bool {
	switch f {
	case TemplateFormatTextBased, TemplateFormatHTML, TemplateFormatFileBased:
		return true
	}
	return false
}

// CallDirection defines whether a phone call was received or placed
type CallDirection string

const (
	CallDirectionInbound  CallDirection = "INBOUND"
	CallDirectionOutbound CallDirection = "OUTBOUND"
)

// DefaultCallDirection is the documented fallback for unrecognized labels
const DefaultCallDirection = CallDirectionOutbound

var callDirectionLabels = map[string]CallDirection{
	"Incoming": CallDirectionInbound,
	"Outgoing": CallDirectionOutbound,
}

// ParseCallDirection maps a label to a direction, falling back to the default
func ParseCallDirection(label string) CallDirection {
	if d, ok := callDirectionLabels[label]; ok {
		return d
	}
	return DefaultCallDirection
}

// Label returns the human-facing label for the direction
func (d CallDirection) Label() string {
	if d == CallDirectionInbound {
		return "Incoming"
	}
	return "Outgoing"
}

// IsValid checks if the CallDirection is a known storage value
func (d CallDirection) IsValid() bool {
	return d == CallDirectionInbound || d == CallDirectionOutbound
}

// CallStatus defines the lifecycle state of a phone call
type CallStatus string

const (
	CallStatusPlanned   CallStatus = "PLANNED"
	CallStatusCompleted CallStatus = "COMPLETED"
	CallStatusCancelled CallStatus = "CANCELLED"
)

// DefaultCallStatus is the documented fallback for unrecognized labels
const DefaultCallStatus = CallStatusPlanned

var callStatusLabels = map[string]CallStatus{
	"Planned":   CallStatusPlanned,
	"Completed": CallStatusCompleted,
	"Cancelled": CallStatusCancelled,
}

// ParseCallStatus maps a label to a status, falling back to the default
func ParseCallStatus(label string) CallStatus {
	if s, ok := callStatusLabels[label]; ok {
		return s
	}
	return DefaultCallStatus
}

// Label returns the human-facing label for the status
func (s CallStatus) Label() string {
	switch s {
	case CallStatusCompleted:
		return "Completed"
	case CallStatusCancelled:
		return "Cancelled"
	default:
		return "Planned"
	}
}

// IsValid checks if the CallStatus is a known storage value
func (s CallStatus) IsValid() bool {
	switch s {
	case CallStatusPlanned, CallStatusCompleted, CallStatusCancelled:
		return true
	}
	return false
}

// LeadStatus defines the lifecycle state of a lead
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "NEW"
	LeadStatusContacted    LeadStatus = "CONTACTED"
	LeadStatusQualified    LeadStatus = "QUALIFIED"
	LeadStatusDisqualified LeadStatus = "DISQUALIFIED"
	LeadStatusConverted    LeadStatus = "CONVERTED"
)

// DefaultLeadStatus is the documented fallback for unrecognized labels
const DefaultLeadStatus = LeadStatusNew

var leadStatusLabels = map[string]LeadStatus{
	"New":          LeadStatusNew,
	"Contacted":    LeadStatusContacted,
	"Qualified":    LeadStatusQualified,
	"Disqualified": LeadStatusDisqualified,
	"Converted":    LeadStatusConverted,
}

// ParseLeadStatus maps a label to a status, falling back to the default
func ParseLeadStatus(label string) LeadStatus {
	if s, ok := leadStatusLabels[label]; ok {
		return s
	}
	return DefaultLeadStatus
}

// Label returns the human-facing label for the status
func (s LeadStatus) Label() string {
	switch s {
	case LeadStatusContacted:
		return "Contacted"
	case LeadStatusQualified:
		return "Qualified"
	case LeadStatusDisqualified:
		return "Disqualified"
	case LeadStatusConverted:
		return "Converted"
	default:
		return "New"
	}
}

// IsValid checks if the LeadStatus is a known storage value
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusDisqualified, LeadStatusConverted:
		return true
	}
	return false
}

// LeadSource defines where a lead originated
type LeadSource string

const (
	LeadSourceLinkedIn LeadSource = "LINKEDIN"
	LeadSourceWebsite  LeadSource = "WEBSITE"
	LeadSourceReferral LeadSource = "REFERRAL"
	LeadSourceEvent    LeadSource = "EVENT"
	LeadSourceOther    LeadSource = "OTHER"
)

// DefaultLeadSource is the documented fallback for unrecognized labels
const DefaultLeadSource = LeadSourceOther

var leadSourceLabels = map[string]LeadSource{
	"LinkedIn": LeadSourceLinkedIn,
	"Website":  LeadSourceWebsite,
	"Referral": LeadSourceReferral,
	"Event":    LeadSourceEvent,
	"Other":    LeadSourceOther,
}

// ParseLeadSource maps a label to a source, falling back to the default
func ParseLeadSource(label string) LeadSource {
	if s, ok := leadSourceLabels[label]; ok {
		return s
	}
	return DefaultLeadSource
}

// Label returns the human-facing label for the source
func (s LeadSource) Label() string {
	switch s {
	case LeadSourceLinkedIn:
		return "LinkedIn"
	case LeadSourceWebsite:
		return "Website"
	case LeadSourceReferral:
		return "Referral"
	case LeadSourceEvent:
		return "Event"
	default:
		return "Other"
	}
}

// IsValid checks if the LeadSource is a known storage value
func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceLinkedIn, LeadSourceWebsite, LeadSourceReferral, LeadSourceEvent, LeadSourceOther:
		return true
	}
	return false
}

// ChannelMedium defines the medium of a marketing channel
type ChannelMedium string

const (
	ChannelMediumEmail  ChannelMedium = "EMAIL"
	ChannelMediumSocial ChannelMedium = "SOCIAL"
	ChannelMediumPrint  ChannelMedium = "PRINT"
	ChannelMediumPhone  ChannelMedium = "PHONE"
)

// DefaultChannelMedium is the documented fallback for unrecognized labels
const DefaultChannelMedium = ChannelMediumEmail

var channelMediumLabels = map[string]ChannelMedium{
	"Email":        ChannelMediumEmail,
	"Social Media": ChannelMediumSocial,
	"Print":        ChannelMediumPrint,
	"Phone":        ChannelMediumPhone,
}

// ParseChannelMedium maps a label to a medium, falling back to the default
func ParseChannelMedium(label string) ChannelMedium {
	if m, ok := channelMediumLabels[label]; ok {
		return m
	}
	return DefaultChannelMedium
}

// Label returns the human-facing label for the medium
func (m ChannelMedium) Label() string {
	switch m {
	case ChannelMediumSocial:
		return "Social Media"
	case ChannelMediumPrint:
		return "Print"
	case ChannelMediumPhone:
		return "Phone"
	default:
		return "Email"
	}
}

// IsValid checks if the ChannelMedium is a known storage value
func (m ChannelMedium) IsValid() bool {
	switch m {
	case ChannelMediumEmail, ChannelMediumSocial, ChannelMediumPrint, ChannelMediumPhone:
		return true
	}
	return false
}
