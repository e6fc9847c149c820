package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "github.com/harvester/mediaconvert/pkg/apis/mediaconvert.io/v1"
	"github.com/harvester/mediaconvert/pkg/record"
)

const (
	activeQueue  = "name: MyQueue\nstatus: ACTIVE\n"
	pausedQueue  = `{"name": "MyQueue", "status": "PAUSED"}`
	stoppedQueue = "name: MyQueue\nstatus: STOPPED\n"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"mediaconvert-model"}, args...))
	return out.String(), err
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestKinds(t *testing.T) {
	out, err := runApp(t, "kinds")
	require.NoError(t, err)
	assert.Equal(t, v1.RecordKinds(), strings.Fields(out))
}

func TestEnums(t *testing.T) {
	out, err := runApp(t, "enums", "QueueStatus")
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE\nPAUSED\n", out)

	out, err = runApp(t, "enums", "--value", "PAUSED")
	require.NoError(t, err)
	assert.Equal(t, "QueueStatus\n", out)

	out, err = runApp(t, "enums")
	require.NoError(t, err)
	assert.Len(t, strings.Fields(out), len(v1.EnumNames()))

	_, err = runApp(t, "enums", "--value", "PAUSED", "QueueStatus")
	assert.ErrorContains(t, err, "--value cannot be combined")

	_, err = runApp(t, "enums", "QueueState")
	assert.True(t, errors.Is(err, v1.ErrUnknownEnum))
}

func TestParseEnum(t *testing.T) {
	out, err := runApp(t, "parse-enum", "QueueStatus", "PAUSED")
	require.NoError(t, err)
	assert.Equal(t, "PAUSED\n", out)

	_, err = runApp(t, "parse-enum", "QueueStatus", "STOPPED")
	assert.True(t, errors.Is(err, record.ErrInvalidEnumValue))

	_, err = runApp(t, "parse-enum", "QueueStatus")
	assert.ErrorContains(t, err, "NAME and VALUE")
}

func TestDescribe(t *testing.T) {
	path := writeDoc(t, "queue.yaml", activeQueue)

	out, err := runApp(t, "describe", "--kind", "CreateQueueRequest", path)
	require.NoError(t, err)
	assert.Equal(t, "{Name: MyQueue,Status: ACTIVE}\n", out)

	out, err = runApp(t, "describe", "--kind", "CreateQueueRequest", "--output", "json", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "MyQueue", "status": "ACTIVE"}`, out)

	_, err = runApp(t, "describe", path)
	assert.ErrorContains(t, err, "--kind is required")

	_, err = runApp(t, "describe", "--kind", "Queue", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestDescribeStrict(t *testing.T) {
	path := writeDoc(t, "queue.yaml", stoppedQueue)

	out, err := runApp(t, "describe", "--kind", "CreateQueueRequest", path)
	require.NoError(t, err)
	assert.Equal(t, "{Name: MyQueue,Status: STOPPED}\n", out)

	_, err = runApp(t, "describe", "--kind", "CreateQueueRequest", "--strict", path)
	assert.True(t, errors.Is(err, record.ErrInvalidEnumValue))
}

func TestFields(t *testing.T) {
	path := writeDoc(t, "queue.yaml", "queue:\n  name: MyQueue\n  status: ACTIVE\n")

	out, err := runApp(t, "fields", "--kind", "Queue", "--query", "queue", path)
	require.NoError(t, err)
	assert.Equal(t, "Name = MyQueue\nStatus = ACTIVE\n", out)
}

func TestFieldsReportsEmptyValues(t *testing.T) {
	path := writeDoc(t, "untag.yaml", "arn: a\ntagKeys: []\n")
	out, err := runApp(t, "fields", "--kind", "UntagResourceRequest", path)
	require.NoError(t, err)
	assert.Equal(t, "Arn = a\nTagKeys = []\n", out)

	path = writeDoc(t, "job.yaml", "settings: {}\n")
	out, err = runApp(t, "fields", "--kind", "CreateJobRequest", path)
	require.NoError(t, err)
	assert.Equal(t, "Settings = {}\n", out)
}

func TestCheckEnums(t *testing.T) {
	out, err := runApp(t, "check-enums", "--kind", "Queue", writeDoc(t, "ok.yaml", activeQueue))
	require.NoError(t, err)
	assert.Equal(t, "all enum values are declared\n", out)

	_, err = runApp(t, "check-enums", "--kind", "Queue", writeDoc(t, "bad.yaml", stoppedQueue))
	assert.ErrorContains(t, err, `Status: cannot create QueueStatus from "STOPPED"`)
}

func TestCompare(t *testing.T) {
	yamlDoc := writeDoc(t, "queue.yaml", activeQueue)
	jsonDoc := writeDoc(t, "queue.json", `{"status": "ACTIVE", "name": "MyQueue"}`)

	out, err := runApp(t, "compare", "--kind", "Queue", yamlDoc, jsonDoc)
	require.NoError(t, err)
	assert.Contains(t, out, "equal: true")
	hash := v1.NewQueue().SetName("MyQueue").SetStatus(v1.QueueStatusActive).Hash()
	assert.Equal(t, 2, strings.Count(out, fmt.Sprintf(": %d\n", hash)))

	out, err = runApp(t, "compare", "--kind", "Queue", yamlDoc, writeDoc(t, "paused.json", pausedQueue))
	assert.True(t, errors.Is(err, ErrRecordsDiffer))
	assert.Contains(t, out, "equal: false")
}
