package digits

import "testing"

func TestCanGenerate(t *testing.T) {
	tests := []struct {
		name        string
		ctx         ShapeContext
		wantAllowed bool
		wantErr     string
	}{
		{name: "valid shape", ctx: ShapeContext{LineCount: 3, LineLength: 4}, wantAllowed: true},
		{name: "single digit", ctx: ShapeContext{LineCount: 1, LineLength: 1}, wantAllowed: true},
		{name: "zero line count", ctx: ShapeContext{LineCount: 0, LineLength: 4}, wantErr: "line_count must be positive (got 0)"},
		{name: "negative line count", ctx: ShapeContext{LineCount: -2, LineLength: 4}, wantErr: "line_count must be positive (got -2)"},
		{name: "zero line length", ctx: ShapeContext{LineCount: 3, LineLength: 0}, wantErr: "line_length must be positive (got 0)"},
		{name: "length checked first", ctx: ShapeContext{LineCount: 0, LineLength: -1}, wantErr: "line_length must be positive (got -1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanGenerate(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanGenerate() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}

			err := result.Error()
			if tt.wantAllowed {
				if err != nil {
					t.Errorf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Error() = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
