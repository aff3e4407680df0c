package template

import (
	"testing"
	"time"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		tmpl string
		data map[string]string
		want string
	}{
		{
			name: "single placeholder",
			tmpl: "Olá {{client_name}}!",
			data: map[string]string{"client_name": "Ana"},
			want: "Olá Ana!",
		},
		{
			name: "multiple placeholders",
			tmpl: "Olá {{client_name}}, amanhã {{appointment_date}}",
			data: map[string]string{"client_name": "Ana", "appointment_date": "16/01/2024"},
			want: "Olá Ana, amanhã 16/01/2024",
		},
		{
			name: "unknown placeholder is left untouched",
			tmpl: "Olá {{client_name}}, até {{appointment_tme}}",
			data: map[string]string{"client_name": "Ana", "appointment_time": "14:30"},
			want: "Olá Ana, até {{appointment_tme}}",
		},
		{
			name: "repeated placeholder",
			tmpl: "{{name}} e {{name}}",
			data: map[string]string{"name": "Bob"},
			want: "Bob e Bob",
		},
		{
			name: "no placeholders",
			tmpl: "Plain message",
			data: map[string]string{"client_name": "Ana"},
			want: "Plain message",
		},
		{
			name: "empty data",
			tmpl: "Olá {{client_name}}",
			data: map[string]string{},
			want: "Olá {{client_name}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.tmpl, tt.data)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 1, 16, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "16/01/2024" {
		t.Errorf("FormatDate() = %q, want %q", got, "16/01/2024")
	}
}

func TestFormatTime(t *testing.T) {
	d := time.Date(2024, 1, 16, 9, 5, 0, 0, time.UTC)
	if got := FormatTime(d); got != "09:05" {
		t.Errorf("FormatTime() = %q, want %q", got, "09:05")
	}
}
