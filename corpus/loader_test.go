package corpus

import (
	"log/slog"
	"os"
	"path/filepath"
	"sentiment-chatbot/errors"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestLoad_Testdata(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	corpus, err := Load(log, filepath.Join("testdata", "intents.json"))
	req.NoError(err)
	req.Len(corpus.Intents, 6)
	req.Equal("greeting", corpus.Intents[0].Tag)
	req.Contains(corpus.Responses(), "refund")
}

func TestLoad_MissingFile(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	_, err := Load(log, filepath.Join(t.TempDir(), "nope.json"))
	req.ErrorIs(err, errors.ErrCorpusLoad)
	req.ErrorIs(err, os.ErrNotExist)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:  "Valid corpus",
			input: `{"intents":[{"tag":"hi","patterns":["hello"],"responses":["Hello!"]}]}`,
		},
		{
			name:    "Not JSON at all",
			input:   "tag: hi\npatterns: [hello]",
			wantErr: errors.ErrNotJSON,
		},
		{
			name:    "Missing tag",
			input:   `{"intents":[{"patterns":["hello"],"responses":["Hello!"]}]}`,
			wantErr: errors.ErrCorpusLoad,
		},
		{
			name:    "No responses",
			input:   `{"intents":[{"tag":"hi","patterns":["hello"],"responses":[]}]}`,
			wantErr: errors.ErrCorpusLoad,
		},
		{
			name:    "No patterns",
			input:   `{"intents":[{"tag":"hi","responses":["Hello!"]}]}`,
			wantErr: errors.ErrCorpusLoad,
		},
		{
			name:    "Empty intents",
			input:   `{"intents":[]}`,
			wantErr: errors.ErrEmptyCorpus,
		},
		{
			name: "Duplicate tags",
			input: `{"intents":[
				{"tag":"hi","patterns":["hello"],"responses":["Hello!"]},
				{"tag":"hi","patterns":["hey"],"responses":["Hey!"]}]}`,
			wantErr: errors.ErrDuplicateTag,
		},
		{
			name:    "Wrong field type",
			input:   `{"intents":[{"tag":42,"patterns":["hello"],"responses":["Hello!"]}]}`,
			wantErr: errors.ErrCorpusLoad,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			corpus, err := Parse([]byte(tt.input))
			if tt.wantErr == nil {
				req.NoError(err)
				req.NotEmpty(corpus.Intents)
				return
			}
			req.ErrorIs(err, tt.wantErr)
			req.ErrorIs(err, errors.ErrCorpusLoad)
		})
	}
}
