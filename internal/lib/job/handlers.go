package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleEnquiryReceivedTask sends the acknowledgement to the
// prospective host and, when an operations inbox is configured, an
// internal alert. Returning an error makes Asynq schedule a retry.
func (j *JobService) handleEnquiryReceivedTask(ctx context.Context, t *asynq.Task) error {
	var p EnquiryReceivedPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal enquiry received payload: %w", err)
	}

	j.logger.Info().
		Str("type", "enquiry_received").
		Int64("enquiry_id", p.EnquiryID).
		Str("to", p.To).
		Msg("Processing enquiry acknowledgement task")

	if err := j.email.SendEnquiryReceivedEmail(p.To, p.HostName); err != nil {
		j.logger.Error().
			Str("type", "enquiry_received").
			Int64("enquiry_id", p.EnquiryID).
			Str("to", p.To).
			Err(err).
			Msg("Failed to send enquiry acknowledgement")
		return err
	}

	// The staff alert is best-effort: a failure here should not retry
	// the whole task and re-send the acknowledgement.
	if j.notify != "" {
		if err := j.email.SendEnquiryNotifyEmail(j.notify, p.HostName, p.PhoneNumber); err != nil {
			j.logger.Error().
				Str("type", "enquiry_received").
				Int64("enquiry_id", p.EnquiryID).
				Err(err).
				Msg("Failed to send staff enquiry alert")
		}
	}

	j.logger.Info().
		Str("type", "enquiry_received").
		Int64("enquiry_id", p.EnquiryID).
		Str("to", p.To).
		Msg("Successfully sent enquiry acknowledgement")

	return nil
}

// handleEnquiryStatusTask notifies a prospective host of a status
// change on their enquiry.
func (j *JobService) handleEnquiryStatusTask(ctx context.Context, t *asynq.Task) error {
	var p EnquiryStatusPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal enquiry status payload: %w", err)
	}

	j.logger.Info().
		Str("type", "enquiry_status").
		Int64("enquiry_id", p.EnquiryID).
		Str("to", p.To).
		Str("status", p.Status).
		Msg("Processing enquiry status task")

	if err := j.email.SendEnquiryStatusEmail(p.To, p.HostName, p.Status, p.Remarks); err != nil {
		j.logger.Error().
			Str("type", "enquiry_status").
			Int64("enquiry_id", p.EnquiryID).
			Str("to", p.To).
			Err(err).
			Msg("Failed to send enquiry status email")
		return err
	}

	j.logger.Info().
		Str("type", "enquiry_status").
		Int64("enquiry_id", p.EnquiryID).
		Str("to", p.To).
		Msg("Successfully sent enquiry status email")

	return nil
}
