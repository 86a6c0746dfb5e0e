package amqp

import (
	"testing"

	"github.com/google/uuid"
)

func TestTransactionRecordedMessageRoundTrip(t *testing.T) {
	msg := NewTransactionRecordedMessage(uuid.New(), uuid.New())

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := TransactionRecordedMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TransactionID != msg.TransactionID || got.AccountID != msg.AccountID {
		t.Fatalf("round trip mismatch: %+v != %+v", got, msg)
	}
	if got.Timestamp.IsZero() {
		t.Fatalf("timestamp not set")
	}
}

func TestTransactionRecordedMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := TransactionRecordedMessageFromJSON([]byte("not json")); err == nil {
		t.Fatalf("expected error")
	}
}
