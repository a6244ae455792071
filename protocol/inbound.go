package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"signald-groups/domain"
	"signald-groups/errors"
	"time"
)

// Frame is one line received from signald.
type Frame struct {
	Type      string          `json:"type"`
	ID        string          `json:"id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Error     json.RawMessage `json:"error,omitempty"`
	ErrorType string          `json:"error_type,omitempty"`
}

func DecodeFrame(line []byte) (Frame, error) {
	var frame Frame
	if err := json.Unmarshal(line, &frame); err != nil {
		return Frame{}, fmt.Errorf("%w: %v", errors.ErrMalformedFrame, err)
	}
	if frame.Type == "" {
		return Frame{}, fmt.Errorf("%w: missing type", errors.ErrMalformedFrame)
	}
	return frame, nil
}

func (f Frame) HasError() bool {
	return len(f.Error) > 0 && !bytes.Equal(f.Error, []byte("null"))
}

type groupList struct {
	Groups []json.RawMessage `json:"groups"`
}

// DecodeGroup decodes and validates a single group object.
func DecodeGroup(data []byte) (domain.GroupSnapshot, error) {
	var snapshot domain.GroupSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return domain.GroupSnapshot{}, fmt.Errorf("%w: %v", errors.ErrMalformedFrame, err)
	}
	if err := snapshot.Validate(); err != nil {
		return domain.GroupSnapshot{}, err
	}
	return snapshot, nil
}

// DecodeGroupList returns the raw group objects of a list_groups answer.
// Each element is decoded separately so that one bad group does not hide the others.
func DecodeGroupList(data []byte) ([]json.RawMessage, error) {
	var list groupList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrMalformedFrame, err)
	}
	return list.Groups, nil
}

type Address struct {
	UUID   string `json:"uuid"`
	Number string `json:"number,omitempty"`
}

type GroupV2Reference struct {
	ID       string `json:"id"`
	Revision int    `json:"revision,omitempty"`
}

type DataMessage struct {
	Timestamp   int64               `json:"timestamp"`
	Body        string              `json:"body"`
	GroupV2     *GroupV2Reference   `json:"groupV2,omitempty"`
	Attachments []domain.Attachment `json:"attachments,omitempty"`
}

type SentTranscript struct {
	Destination *Address     `json:"destination,omitempty"`
	Timestamp   int64        `json:"timestamp"`
	Message     *DataMessage `json:"message"`
}

type SyncMessage struct {
	Sent *SentTranscript `json:"sent,omitempty"`
}

// IncomingMessage is the envelope signald pushes for every received message.
type IncomingMessage struct {
	Account     string       `json:"account"`
	Source      Address      `json:"source"`
	Timestamp   int64        `json:"timestamp"`
	DataMessage *DataMessage `json:"data_message,omitempty"`
	SyncMessage *SyncMessage `json:"sync_message,omitempty"`
}

func DecodeIncomingMessage(data []byte) (IncomingMessage, error) {
	var message IncomingMessage
	if err := json.Unmarshal(data, &message); err != nil {
		return IncomingMessage{}, fmt.Errorf("%w: %v", errors.ErrMalformedFrame, err)
	}
	return message, nil
}

// GroupMessage extracts the group message carried by the envelope.
// ok is false when the envelope is not addressed to a v2 group.
func (m IncomingMessage) GroupMessage() (domain.GroupMessage, bool) {
	if dm := m.DataMessage; dm != nil && dm.GroupV2 != nil && dm.GroupV2.ID != "" {
		return domain.GroupMessage{
			GroupID:     dm.GroupV2.ID,
			SenderID:    m.Source.UUID,
			Body:        dm.Body,
			Attachments: dm.Attachments,
			IsSelfEcho:  m.Account != "" && m.Source.UUID == m.Account,
			Timestamp:   toTime(dm.Timestamp, m.Timestamp),
		}, true
	}
	if m.SyncMessage == nil || m.SyncMessage.Sent == nil {
		return domain.GroupMessage{}, false
	}
	sent := m.SyncMessage.Sent
	if sent.Message == nil || sent.Message.GroupV2 == nil || sent.Message.GroupV2.ID == "" {
		return domain.GroupMessage{}, false
	}
	sender := m.Source.UUID
	if sender == "" {
		sender = m.Account
	}
	return domain.GroupMessage{
		GroupID:     sent.Message.GroupV2.ID,
		SenderID:    sender,
		Body:        sent.Message.Body,
		Attachments: sent.Message.Attachments,
		IsSelfEcho:  true,
		Timestamp:   toTime(sent.Timestamp, sent.Message.Timestamp, m.Timestamp),
	}, true
}

// toTime picks the first non-zero millisecond timestamp.
func toTime(candidates ...int64) time.Time {
	for _, ms := range candidates {
		if ms > 0 {
			return time.UnixMilli(ms).UTC()
		}
	}
	return time.Now().UTC()
}
