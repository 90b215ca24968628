package email

// SendEnquiryReceivedEmail acknowledges a new enquiry to the
// prospective host.
func (c *Client) SendEnquiryReceivedEmail(to, hostName string) error {
	data := map[string]string{
		"HostName": hostName,
	}

	return c.SendEmail(
		to,
		"We received your enquiry",
		TemplateEnquiryReceived,
		data,
	)
}

// SendEnquiryStatusEmail notifies a prospective host that the status of
// their enquiry changed.
func (c *Client) SendEnquiryStatusEmail(to, hostName, status, remarks string) error {
	data := map[string]string{
		"HostName": hostName,
		"Status":   status,
		"Remarks":  remarks,
	}

	return c.SendEmail(
		to,
		"Update on your enquiry",
		TemplateEnquiryStatus,
		data,
	)
}

// SendEnquiryNotifyEmail alerts the operations inbox about a new
// enquiry so staff can follow up.
func (c *Client) SendEnquiryNotifyEmail(to, hostName, phoneNumber string) error {
	data := map[string]string{
		"HostName":    hostName,
		"PhoneNumber": phoneNumber,
	}

	return c.SendEmail(
		to,
		"New host enquiry received",
		TemplateEnquiryNotify,
		data,
	)
}
