package generate

import (
	"context"
	"testing"
)

func TestPick_ExplicitRules(t *testing.T) {
	g := Pick(context.Background(), Config{Backend: BackendRules}, nil)
	if g.Name() != BackendRules {
		t.Errorf("Pick() = %s, want rules", g.Name())
	}
}

func TestPick_UnknownBackend(t *testing.T) {
	g := Pick(context.Background(), Config{Backend: "oracle"}, nil)
	if g.Name() != BackendRules {
		t.Errorf("Pick() = %s, want rules fallback", g.Name())
	}
}

func TestPick_GeminiWithoutKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	g := Pick(context.Background(), Config{Backend: BackendGemini}, nil)
	if g.Name() != BackendRules {
		t.Errorf("Pick() = %s, want rules fallback", g.Name())
	}
}

func TestPick_HuggingFaceWithoutToken(t *testing.T) {
	t.Setenv("HUGGINGFACEHUB_API_TOKEN", "")

	g := Pick(context.Background(), Config{Backend: BackendHuggingFace}, nil)
	if g.Name() != BackendRules {
		t.Errorf("Pick() = %s, want rules fallback", g.Name())
	}
}

func TestPick_AutoWithoutCredentials(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("HUGGINGFACEHUB_API_TOKEN", "")

	tests := []string{BackendAuto, ""}
	for _, backend := range tests {
		g := Pick(context.Background(), Config{Backend: backend}, nil)
		if g.Name() != BackendRules {
			t.Errorf("Pick(%q) = %s, want rules", backend, g.Name())
		}
	}
}
