package analysis_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/diwan/internal/analysis"
	"github.com/taibuivan/diwan/internal/platform/apperr"
	"github.com/taibuivan/diwan/internal/poetry"
)

/*
TestAnalyze_Forms verifies verse grouping, rhyme detection and the form guess.
*/
func TestAnalyze_Forms(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		lines       int
		verses      int
		paired      bool
		rhyme       string
		consistency float64
		form        poetry.PoemType
	}{
		{
			name:        "hemistichs on separate lines",
			text:        "على قدر أهل العزم تأتي العزائم\nوتأتي على قدر الكرام المكارم\nوتعظم في عين الصغير صغارها\nوتصغر في عين العظيم العظائم",
			lines:       4,
			verses:      2,
			paired:      true,
			rhyme:       "الميم",
			consistency: 1,
			form:        poetry.TypeClassical,
		},
		{
			name:        "separated verses with diacritics",
			text:        "قفا نبك من ذكرى حبيب ومنزلِ | بسقط اللوى بين الدخول فحوملِ\nفتوضح فالمقراة لم يعف رسمها | لما نسجتها من جنوب وشمألِ",
			lines:       2,
			verses:      2,
			paired:      true,
			rhyme:       "اللام",
			consistency: 1,
			form:        poetry.TypeClassical,
		},
		{
			name:        "odd free verse",
			text:        "أحبيني بلا عقد\nكأنّا لم نكن إلّا معاً أبداً\nوأنّ الكون أغنية",
			lines:       3,
			verses:      3,
			paired:      false,
			rhyme:       "الدال",
			consistency: 0.67,
			form:        poetry.TypeFreeVerse,
		},
		{
			name:        "paired but unrhymed",
			text:        "الشمس تشرق\nالقمر يغيب\n\nالنهر يجري\nالطير يطير",
			lines:       4,
			verses:      2,
			paired:      true,
			rhyme:       "الباء",
			consistency: 0.5,
			form:        poetry.TypeFreeVerse,
		},
	}

	analyzer := analysis.NewAnalyzer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := analyzer.Analyze(tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.lines, result.Lines)
			assert.Equal(t, tt.verses, result.Verses)
			assert.Equal(t, tt.paired, result.Hemistichs)
			assert.Equal(t, tt.rhyme, result.Rhyme)
			assert.InDelta(t, tt.consistency, result.RhymeConsistency, 0.001)
			assert.Equal(t, tt.form, result.Form)
			assert.Equal(t, analysis.MeterUndetected, result.Meter)
		})
	}
}

/*
TestAnalyze_WordCount verifies words are counted across all lines.
*/
func TestAnalyze_WordCount(t *testing.T) {
	result, err := analysis.NewAnalyzer().Analyze("على قدر أهل العزم تأتي العزائم\nوتأتي على قدر الكرام المكارم")
	require.NoError(t, err)
	assert.Equal(t, 11, result.Words)
}

/*
TestAnalyze_Validation verifies unusable input is rejected.
*/
func TestAnalyze_Validation(t *testing.T) {
	for name, text := range map[string]string{
		"empty":    "  \n ",
		"latin":    "shall I compare thee",
		"too long": strings.Repeat("ب", analysis.MaxTextLength+1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := analysis.NewAnalyzer().Analyze(text)
			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

/*
TestHandler_Analyze verifies the analysis endpoint.
*/
func TestHandler_Analyze(t *testing.T) {
	router := chi.NewRouter()
	analysis.NewHandler(analysis.NewAnalyzer()).RegisterRoutes(router)

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"ok", `{"text": "أراك عصي الدمع شيمتك الصبر\nأما للهوى نهي عليك ولا أمر"}`, http.StatusOK},
		{"empty", `{"text": ""}`, http.StatusBadRequest},
		{"bad json", `[`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/analysis", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}
