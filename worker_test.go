package shop

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/cherryprincess/shopping-cart-APP/models"
)

type recordingProcessor struct {
	mu  sync.Mutex
	ids []string
}

func (p *recordingProcessor) ProcessCommand(_ context.Context, cmd *models.Command) error {
	p.mu.Lock()
	p.ids = append(p.ids, cmd.ID)
	p.mu.Unlock()
	return nil
}

func TestWorkerPool_SingleWorkerKeepsOrder(t *testing.T) {
	processor := &recordingProcessor{}
	wp := NewWorkerPool(0, processor, zap.NewNop())

	want := []string{"a", "b", "c", "d", "e"}
	for _, id := range want {
		if !wp.Submit(context.Background(), &models.Command{ID: id}) {
			t.Fatalf("Submit(%s) = false", id)
		}
	}
	wp.Shutdown()

	if len(processor.ids) != len(want) {
		t.Fatalf("processed %v, want %v", processor.ids, want)
	}
	for i := range want {
		if processor.ids[i] != want[i] {
			t.Fatalf("processed %v, want %v", processor.ids, want)
		}
	}
}

func TestWorkerPool_SubmitAfterShutdown(t *testing.T) {
	wp := NewWorkerPool(3, &recordingProcessor{}, zap.NewNop())
	wp.Shutdown()
	wp.Shutdown()

	if wp.Submit(context.Background(), &models.Command{ID: "late"}) {
		t.Error("Submit() after Shutdown = true")
	}
}
