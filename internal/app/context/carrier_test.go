package appctx

import (
	"context"
	"testing"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	if rc := FromContext(context.Background()); rc != nil {
		t.Fatalf("FromContext(empty) = %v, want nil", rc)
	}

	rc := New(context.Background())
	ctx := WithRequestContext(context.Background(), rc)
	if got := FromContext(ctx); got != rc {
		t.Fatalf("FromContext() = %p, want %p", got, rc)
	}
}

func TestForRequest(t *testing.T) {
	t.Parallel()

	t.Run("without carrier", func(t *testing.T) {
		t.Parallel()
		if rc := ForRequest(context.Background()); rc == nil || rc.Committed() {
			t.Fatal("ForRequest() did not return an open RequestContext")
		}
	})

	t.Run("reuses open carrier", func(t *testing.T) {
		t.Parallel()
		rc := New(context.Background())
		ctx := WithRequestContext(context.Background(), rc)
		if got := ForRequest(ctx); got != rc {
			t.Fatal("ForRequest() did not reuse the carried RequestContext")
		}
	})

	t.Run("replaces committed carrier", func(t *testing.T) {
		t.Parallel()
		rc := New(context.Background())
		if err := rc.Commit(context.Background()); err != nil {
			t.Fatalf("Commit: %v", err)
		}
		ctx := WithRequestContext(context.Background(), rc)

		got := ForRequest(ctx)
		if got == rc || got.Committed() {
			t.Fatal("ForRequest() returned the committed RequestContext")
		}
	})
}
