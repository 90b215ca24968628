package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// Task type names stored in Redis. Asynq routes on these strings.
const (
	TaskEnquiryReceived = "email:enquiry_received"
	TaskEnquiryStatus   = "email:enquiry_status"
)

// EnquiryReceivedPayload is the JSON payload for the acknowledgement
// sent after a new enquiry.
type EnquiryReceivedPayload struct {
	EnquiryID   int64  `json:"enquiry_id"`
	To          string `json:"to"`
	HostName    string `json:"host_name"`
	PhoneNumber string `json:"phone_number"`
}

// NewEnquiryReceivedTask constructs the acknowledgement task. Retried
// up to 3 times; a stuck provider call is cut off after 30 seconds.
func NewEnquiryReceivedTask(enquiryID int64, to, hostName, phoneNumber string) (*asynq.Task, error) {
	payload, err := json.Marshal(EnquiryReceivedPayload{
		EnquiryID:   enquiryID,
		To:          to,
		HostName:    hostName,
		PhoneNumber: phoneNumber,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskEnquiryReceived,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnquiryStatusPayload is the JSON payload for a status-change notice.
type EnquiryStatusPayload struct {
	EnquiryID int64  `json:"enquiry_id"`
	To        string `json:"to"`
	HostName  string `json:"host_name"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks"`
}

// NewEnquiryStatusTask constructs the status-change task. Status mail is
// less urgent than the first acknowledgement, so it rides the low queue.
func NewEnquiryStatusTask(enquiryID int64, to, hostName, status, remarks string) (*asynq.Task, error) {
	payload, err := json.Marshal(EnquiryStatusPayload{
		EnquiryID: enquiryID,
		To:        to,
		HostName:  hostName,
		Status:    status,
		Remarks:   remarks,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskEnquiryStatus,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
