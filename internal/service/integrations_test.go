package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/segmentio/kafka-go"

	"loja-service/internal/entity"
)

func TestRedisGuard(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	g := NewIdempotencyGuard(rdb)

	t.Run("first claim wins", func(t *testing.T) {
		ok, err := g.Claim(ctx, "k-1")
		if err != nil || !ok {
			t.Fatalf("Claim = %v, %v", ok, err)
		}
		ok, err = g.Claim(ctx, "k-1")
		if err != nil || ok {
			t.Fatalf("second Claim = %v, %v", ok, err)
		}
	})

	t.Run("key is namespaced and expires", func(t *testing.T) {
		if !mr.Exists("idempotent-key:k-1") {
			t.Fatal("expected idempotent-key:k-1 to be set")
		}
		if ttl := mr.TTL("idempotent-key:k-1"); ttl != 24*time.Hour {
			t.Fatalf("ttl = %v, want 24h", ttl)
		}
	})

	t.Run("release allows a retry", func(t *testing.T) {
		if err := g.Release(ctx, "k-1"); err != nil {
			t.Fatalf("Release returned error: %v", err)
		}
		ok, err := g.Claim(ctx, "k-1")
		if err != nil || !ok {
			t.Fatalf("Claim after release = %v, %v", ok, err)
		}
	})

	t.Run("reused key through claim helper", func(t *testing.T) {
		if err := claim(ctx, g, "k-2"); err != nil {
			t.Fatalf("claim returned error: %v", err)
		}
		if err := claim(ctx, g, "k-2"); !errors.Is(err, ErrDuplicateRequest) {
			t.Fatalf("expected ErrDuplicateRequest, got %v", err)
		}
	})

	t.Run("closed client", func(t *testing.T) {
		closed := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		closed.Close()
		if err := claim(ctx, NewIdempotencyGuard(closed), "k-3"); err == nil || errors.Is(err, ErrDuplicateRequest) {
			t.Fatalf("expected redis error, got %v", err)
		}
	})
}

type capturedWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *capturedWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return w.err
}

func TestKafkaPublisher(t *testing.T) {
	w := &capturedWriter{}
	p := &KafkaPublisher{w: w}

	item := entity.CartItem{ID: 7, ProdutoID: 4, Quantidade: 2, ClienteID: 1}
	if err := p.Publish(context.Background(), "carrinho-criado-7", item); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if len(w.msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(w.msgs))
	}
	if got := string(w.msgs[0].Key); got != "carrinho-criado-7" {
		t.Fatalf("key = %q", got)
	}

	var body map[string]any
	if err := json.Unmarshal(w.msgs[0].Value, &body); err != nil {
		t.Fatalf("value is not JSON: %v", err)
	}
	want := map[string]any{"id": float64(7), "produto_id": float64(4), "quantidade": float64(2), "cliente_id": float64(1)}
	for k, v := range want {
		if body[k] != v {
			t.Fatalf("%s = %v, want %v (body %s)", k, body[k], v, w.msgs[0].Value)
		}
	}

	t.Run("unmarshalable payload never reaches the writer", func(t *testing.T) {
		w := &capturedWriter{}
		if err := (&KafkaPublisher{w: w}).Publish(context.Background(), "k", make(chan int)); err == nil {
			t.Fatal("expected marshal error")
		}
		if len(w.msgs) != 0 {
			t.Fatal("nothing should be written")
		}
	})

	t.Run("writer error is returned", func(t *testing.T) {
		w := &capturedWriter{err: errors.New("broker down")}
		if err := (&KafkaPublisher{w: w}).Publish(context.Background(), "k", item); err == nil {
			t.Fatal("expected writer error")
		}
	})
}
