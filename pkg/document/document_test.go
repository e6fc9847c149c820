package document

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	v1 "github.com/harvester/mediaconvert/pkg/apis/mediaconvert.io/v1"
	"github.com/harvester/mediaconvert/pkg/record"
)

const jobYAML = `
role: arn:aws:iam::111122223333:role/MediaConvert
queue: arn:aws:mediaconvert:us-west-2:111122223333:queues/Default
priority: 10
userMetadata:
  customer: acme
settings:
  inputs:
    - fileInput: s3://input/movie.mov
      audioSelectors:
        Audio Selector 1:
          defaultSelection: DEFAULT
          tracks: [1, 2]
  outputGroups:
    - name: File Group
      outputGroupSettings:
        type: FILE_GROUP_SETTINGS
        fileGroupSettings:
          destination: s3://output/
      outputs:
        - extension: mp4
          videoDescription:
            codecSettings:
              codec: H_264
              h264Settings:
                bitrate: 9007199254740993
                gopSize: 2.5
                rateControlMode: CBR
`

func TestLoad(t *testing.T) {
	r, err := Load("CreateJobRequest", []byte(jobYAML), Options{})
	require.NoError(t, err)
	req, ok := r.(*v1.CreateJobRequest)
	require.True(t, ok)

	assert.Equal(t, ptr.To(int64(10)), req.Priority)
	assert.Equal(t, map[string]string{"customer": "acme"}, req.UserMetadata)
	require.Len(t, req.Settings.Inputs, 1)
	selector := req.Settings.Inputs[0].AudioSelectors["Audio Selector 1"]
	require.NotNil(t, selector)
	assert.Equal(t, v1.AudioDefaultSelectionDefault, *selector.DefaultSelection)
	assert.Equal(t, []int64{1, 2}, selector.Tracks)

	group := req.Settings.OutputGroups[0]
	assert.Equal(t, v1.OutputGroupTypeFileGroupSettings, *group.OutputGroupSettings.Type)
	h264 := group.Outputs[0].VideoDescription.CodecSettings.H264Settings
	assert.Equal(t, int64(9007199254740993), *h264.Bitrate, "integers are not rounded through float64")
	assert.Equal(t, 2.5, *h264.GopSize)
	assert.Equal(t, v1.H264RateControlModeCbr, *h264.RateControlMode)
}

func TestLoadJSON(t *testing.T) {
	r, err := Load("Queue", []byte(`{"name":"MyQueue","status":"PAUSED","createdAt":"2024-05-01T12:00:00Z"}`), Options{})
	require.NoError(t, err)

	expected := v1.NewQueue().
		SetName("MyQueue").
		SetStatus(v1.QueueStatusPaused).
		SetCreatedAt(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	assert.True(t, expected.Equal(r.(*v1.Queue)), r.String())
}

func TestLoadQuery(t *testing.T) {
	r, err := Load("OutputGroup", []byte(jobYAML), Options{Query: "settings.outputGroups.0"})
	require.NoError(t, err)
	assert.Contains(t, r.String(), "Name: File Group")

	_, err = Load("OutputGroup", []byte(jobYAML), Options{Query: "settings.outputGroups.3"})
	assert.True(t, errors.Is(err, ErrQueryNoMatch))
}

func TestLoadEnums(t *testing.T) {
	doc := []byte("name: MyQueue\nstatus: STOPPED\n")

	r, err := Load("CreateQueueRequest", doc, Options{})
	require.NoError(t, err)
	req := r.(*v1.CreateQueueRequest)
	assert.Equal(t, v1.QueueStatus("STOPPED"), *req.Status)
	assert.ErrorContains(t, record.CheckEnums(req), `Status: cannot create QueueStatus from "STOPPED"`)

	_, err = Load("CreateQueueRequest", doc, Options{StrictEnums: true})
	assert.True(t, errors.Is(err, record.ErrInvalidEnumValue))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("CreateBucketRequest", []byte("name: x"), Options{})
	assert.True(t, errors.Is(err, v1.ErrUnknownKind))

	_, err = Load("Queue", []byte("name: [unterminated"), Options{})
	assert.ErrorContains(t, err, "failed to read document")

	_, err = Load("Queue", []byte("- a\n- b\n"), Options{})
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	req := v1.NewCreateQueueRequest().SetName("MyQueue").SetStatus(v1.QueueStatusActive)

	testCases := []struct {
		format   string
		expected string
	}{
		{format: "", expected: "{Name: MyQueue,Status: ACTIVE}\n"},
		{format: FormatText, expected: "{Name: MyQueue,Status: ACTIVE}\n"},
		{format: FormatJSON, expected: "{\n  \"name\": \"MyQueue\",\n  \"status\": \"ACTIVE\"\n}\n"},
		{format: FormatYAML, expected: "name: MyQueue\nstatus: ACTIVE\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			out, err := Render(req, tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(out))
		})
	}

	_, err := Render(req, "xml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestRenderRoundTrip(t *testing.T) {
	r, err := Load("CreateJobRequest", []byte(jobYAML), Options{})
	require.NoError(t, err)

	out, err := Render(r, FormatYAML)
	require.NoError(t, err)
	again, err := Load("CreateJobRequest", out, Options{})
	require.NoError(t, err)
	assert.True(t, r.(*v1.CreateJobRequest).Equal(again.(*v1.CreateJobRequest)))
}
