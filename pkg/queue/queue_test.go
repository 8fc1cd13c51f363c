package queue_test

import (
	"testing"

	"github.com/yeisme/imagevault/pkg/queue"
)

func TestWatermillMessageEnvelope(t *testing.T) {
	payload := queue.ImageStoredPayload{
		Image: queue.ImageRef{
			Name:         "1755912345678-photo.png",
			OriginalName: "photo.png",
			Size:         42,
			ContentType:  "image/png",
		},
		URL:    "http://localhost:8080/uploads/1755912345678-photo.png",
		Source: "upload",
	}

	msg, err := queue.NewWatermillMessage(
		queue.TopicImageStored, payload,
		queue.WithTraceID("trace-xyz"),
		queue.WithProducer("imagevault"),
	)
	if err != nil {
		t.Fatalf("build message: %v", err)
	}

	if msg.UUID == "" {
		t.Fatal("message UUID empty")
	}

	if got := msg.Metadata.Get("topic"); got != queue.TopicImageStored {
		t.Fatalf("metadata topic = %q, want %q", got, queue.TopicImageStored)
	}

	if got := msg.Metadata.Get("trace_id"); got != "trace-xyz" {
		t.Fatalf("metadata trace_id = %q, want trace-xyz", got)
	}

	env, err := queue.ParseImageStored(msg)
	if err != nil {
		t.Fatalf("parse message: %v", err)
	}

	if env.Header.Topic != queue.TopicImageStored {
		t.Fatalf("header topic = %q, want %q", env.Header.Topic, queue.TopicImageStored)
	}

	if env.Header.Version != queue.PayloadVersionV1 {
		t.Fatalf("header version = %q, want %q", env.Header.Version, queue.PayloadVersionV1)
	}

	if env.Header.Producer != "imagevault" {
		t.Fatalf("header producer = %q, want imagevault", env.Header.Producer)
	}

	if env.Payload.Image.Name != payload.Image.Name {
		t.Fatalf("payload name = %q, want %q", env.Payload.Image.Name, payload.Image.Name)
	}

	if env.Payload.URL != payload.URL {
		t.Fatalf("payload url = %q, want %q", env.Payload.URL, payload.URL)
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	body := []byte(`{"header":{"topic":"iv.image.deleted","occurred_at":"2025-01-02T03:04:05Z","future":"x"},"payload":{"name":"1755912345678-a.png","extra":1}}`)

	env, err := queue.Decode[queue.ImageDeletedPayload](body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if env.Payload.Name != "1755912345678-a.png" {
		t.Fatalf("payload name = %q, want 1755912345678-a.png", env.Payload.Name)
	}
}
