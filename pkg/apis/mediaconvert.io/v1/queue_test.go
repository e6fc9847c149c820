package v1

import (
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/utils/ptr"

	"github.com/harvester/mediaconvert/pkg/record"
)

func TestCreateQueueRequest(t *testing.T) {
	req := NewCreateQueueRequest().
		SetName("MyQueue").
		SetStatus(QueueStatusActive)

	require.NotNil(t, req.Status)
	assert.Equal(t, "ACTIVE", req.Status.String())
	assert.Equal(t, ptr.To("MyQueue"), req.Name)
	assert.Nil(t, req.Description)

	s := req.String()
	assert.Contains(t, s, "Name: MyQueue")
	assert.Contains(t, s, "Status: ACTIVE")
	assert.NotContains(t, s, "Description:")
	assert.Equal(t, "{Name: MyQueue,Status: ACTIVE}", s)
}

func TestSetCopiesCollections(t *testing.T) {
	tags := map[string]string{"env": "prod"}
	keys := []string{"env"}

	req := NewCreateQueueRequest().SetTags(tags)
	untag := NewUntagResourceRequest().SetTagKeys(keys)

	tags["team"] = "media"
	keys[0] = "team"

	assert.Equal(t, map[string]string{"env": "prod"}, req.Tags)
	assert.Equal(t, []string{"env"}, untag.TagKeys)
}

func TestSetKeepsNilAndEmptyApart(t *testing.T) {
	absent := NewUntagResourceRequest().SetTagKeys(nil)
	empty := NewUntagResourceRequest().SetTagKeys([]string{})

	assert.Nil(t, absent.TagKeys)
	assert.NotNil(t, empty.TagKeys)
	assert.Empty(t, empty.TagKeys)
	assert.False(t, absent.Equal(empty))
	assert.Equal(t, "{}", absent.String())
	assert.Equal(t, "{TagKeys: []}", empty.String())
}

func TestAppend(t *testing.T) {
	res := NewListQueuesResult()
	assert.Nil(t, res.Queues)

	res.AppendQueues(NewQueue().SetName("a")).AppendQueues(NewQueue().SetName("b"), NewQueue().SetName("c"))
	require.Len(t, res.Queues, 3)
	assert.Equal(t, "c", *res.Queues[2].Name)

	empty := NewAudioSelector().AppendTracks()
	assert.NotNil(t, empty.Tracks)
	assert.Empty(t, empty.Tracks)
}

func TestAddEntry(t *testing.T) {
	req, err := NewCreateQueueRequest().AddTagsEntry("env", "prod")
	require.NoError(t, err)
	_, err = req.AddTagsEntry("team", "media")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"env": "prod", "team": "media"}, req.Tags)

	same, err := req.AddTagsEntry("env", "dev")
	assert.Same(t, req, same)
	assert.True(t, errors.Is(err, record.ErrDuplicateKey))
	assert.EqualError(t, err, `duplicated key "env" provided for Tags: duplicate key`)
	assert.Equal(t, "prod", req.Tags["env"])

	req.ClearTagsEntries()
	assert.Nil(t, req.Tags)
	assert.NotContains(t, req.String(), "Tags:")
}

func TestAddEntryRecordValues(t *testing.T) {
	input := NewInput()
	_, err := input.AddAudioSelectorsEntry("Audio Selector 1", NewAudioSelector().SetDefaultSelection(AudioDefaultSelectionDefault))
	require.NoError(t, err)
	_, err = input.AddAudioSelectorsEntry("Audio Selector 1", NewAudioSelector())
	assert.True(t, errors.Is(err, record.ErrDuplicateKey))
	assert.Equal(t, "{AudioSelectors: {Audio Selector 1={DefaultSelection: DEFAULT}}}", input.String())
}

func TestNestedSettings(t *testing.T) {
	settings := NewJobSettings().AppendOutputGroups(
		NewOutputGroup().
			SetName("HLS").
			AppendOutputs(NewOutput().SetVideoDescription(
				NewVideoDescription().SetCodecSettings(
					NewVideoCodecSettings().
						SetCodec(VideoCodecH264).
						SetH264Settings(NewH264Settings().
							SetBitrate(5000000).
							SetRateControlMode(H264RateControlModeCbr)),
				),
			)),
	)

	assert.Equal(t,
		"{OutputGroups: [{Name: HLS,Outputs: [{VideoDescription: {CodecSettings: {Codec: H_264,H264Settings: {Bitrate: 5000000,RateControlMode: CBR}}}}]}]}",
		settings.String())

	wire := record.ToMap(settings)
	groups, ok := wire["outputGroups"].([]any)
	require.True(t, ok)
	require.Len(t, groups, 1)
	assert.Equal(t, "HLS", groups[0].(map[string]any)["name"])
}

func TestEqualIgnoresRequestBase(t *testing.T) {
	a := NewGetJobRequest().SetId("1234")
	b := NewGetJobRequest().SetId("1234")
	a.PutCustomHeader("x-amz-trace", "abc")

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, map[string]string{"x-amz-trace": "abc"}, a.CustomHeaders())
	assert.Nil(t, b.CustomHeaders())

	b.SetId("5678")
	assert.False(t, a.Equal(b))
}

func TestEqualAcrossNil(t *testing.T) {
	var a, b *Queue
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewQueue()))
	assert.False(t, NewQueue().Equal(a))
	assert.True(t, NewQueue().Equal(NewQueue()))
}

func TestParseEnum(t *testing.T) {
	status, err := ParseQueueStatus("PAUSED")
	require.NoError(t, err)
	assert.Equal(t, QueueStatusPaused, status)

	_, err = ParseQueueStatus("STOPPED")
	assert.True(t, errors.Is(err, record.ErrInvalidEnumValue))
	assert.EqualError(t, err, `cannot create QueueStatus from "STOPPED": invalid enum value`)

	_, err = ParseQueueStatus("")
	assert.EqualError(t, err, "QueueStatus value cannot be empty: invalid enum value")

	_, err = ParseQueueStatus("active")
	assert.Error(t, err, "wire values are case sensitive")

	assert.False(t, QueueStatus("STOPPED").IsKnown())
	assert.Equal(t, []H265CodecProfile{
		H265CodecProfileMainMain,
		H265CodecProfileMainHigh,
		H265CodecProfileMain10Main,
		H265CodecProfileMain10High,
		H265CodecProfileMain4228bitMain,
		H265CodecProfileMain4228bitHigh,
		H265CodecProfileMain42210bitMain,
		H265CodecProfileMain42210bitHigh,
	}, H265CodecProfile("").Values())
}

func TestEnsureClientRequestToken(t *testing.T) {
	req := NewCreateJobRequest()
	assert.Nil(t, req.ClientRequestToken)

	req.EnsureClientRequestToken()
	require.NotNil(t, req.ClientRequestToken)
	_, err := uuid.Parse(*req.ClientRequestToken)
	assert.NoError(t, err)

	token := *req.ClientRequestToken
	assert.Equal(t, token, *req.EnsureClientRequestToken().ClientRequestToken)

	fixed := NewCreateJobRequest().SetClientRequestToken("retry-1").EnsureClientRequestToken()
	assert.Equal(t, "retry-1", *fixed.ClientRequestToken)
}

func TestLanguageCodeTag(t *testing.T) {
	testCases := []struct {
		code     LanguageCode
		expected string
	}{
		{code: LanguageCodeEng, expected: "en"},
		{code: LanguageCodeSpa, expected: "es"},
		{code: LanguageCodeFra, expected: "fr"},
		{code: LanguageCodeJpn, expected: "ja"},
	}
	for _, tc := range testCases {
		t.Run(string(tc.code), func(t *testing.T) {
			tag, err := tc.code.Tag()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tag.String())
		})
	}

	for _, code := range []LanguageCode{LanguageCodeQaa, LanguageCodeOrj, LanguageCodeQpc, LanguageCodeTng} {
		_, err := code.Tag()
		assert.True(t, errors.Is(err, ErrNoLanguageTag), "case %q", code)
	}
}

func TestRegistry(t *testing.T) {
	r, err := NewRecord("CreateQueueRequest")
	require.NoError(t, err)
	assert.IsType(t, &CreateQueueRequest{}, r)
	assert.Equal(t, "{}", r.String())

	_, err = NewRecord("CreateBucketRequest")
	assert.True(t, errors.Is(err, ErrUnknownKind))

	kinds := RecordKinds()
	assert.IsIncreasing(t, kinds)
	assert.Contains(t, kinds, "Job")
	assert.Contains(t, kinds, "DeleteQueueResult")
	assert.NotContains(t, kinds, "RequestBase")
	assert.NotContains(t, kinds, "ResponseMetadata")

	names := EnumNames()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "LanguageCode")

	values, err := EnumValues("QueueStatus")
	require.NoError(t, err)
	assert.Equal(t, []string{"ACTIVE", "PAUSED"}, values)

	_, err = EnumValues("Colour")
	assert.True(t, errors.Is(err, ErrUnknownEnum))

	e, err := ParseEnum("JobStatus", "COMPLETE")
	require.NoError(t, err)
	assert.Equal(t, JobStatusComplete, e)

	_, err = ParseEnum("JobStatus", "DONE")
	assert.True(t, errors.Is(err, record.ErrInvalidEnumValue))
}
