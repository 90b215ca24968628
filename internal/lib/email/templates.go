package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateEnquiryReceived corresponds to
	// templates/emails/enquiry_received.html
	TemplateEnquiryReceived Template = "enquiry_received"

	// TemplateEnquiryStatus corresponds to
	// templates/emails/enquiry_status.html
	TemplateEnquiryStatus Template = "enquiry_status"

	// TemplateEnquiryNotify corresponds to
	// templates/emails/enquiry_notify.html (internal staff alert)
	TemplateEnquiryNotify Template = "enquiry_notify"
)
