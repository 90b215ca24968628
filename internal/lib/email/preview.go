package email

// PreviewData contains sample template data for local preview/testing.
//
// It maps:
//
//	templateName -> (templateVariableName -> exampleValue)
var PreviewData = map[string]map[string]string{
	"enquiry_received": {
		"HostName": "Asha",
	},
	"enquiry_status": {
		"HostName": "Asha",
		"Status":   "PROCESSED",
		"Remarks":  "Our coordinator will call you this week.",
	},
	"enquiry_notify": {
		"HostName":    "Asha",
		"PhoneNumber": "9876543210",
	},
}
