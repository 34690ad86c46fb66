package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/returnspell/core"
	"github.com/lixenwraith/returnspell/event"
)

type fakeBinding struct {
	runs   int
	runErr error
	args   [][3]any
	point  core.ReturnPoint
}

func (f *fakeBinding) RunReturnSpell() error {
	f.runs++
	return f.runErr
}

func (f *fakeBinding) SetReturnPoint(m, x, y any) {
	f.args = append(f.args, [3]any{m, x, y})
}

func (f *fakeBinding) GetPoint() core.ReturnPoint { return f.point }

func TestRuntimeGlobals(t *testing.T) {
	b := &fakeBinding{}
	r := NewRuntime(b, nil, nil)

	require.NoError(t, r.DoString(`setReturnPoint(3, 5, 5)`))
	require.NoError(t, r.DoString(`setReturnPoint("7", 2.5)`))
	require.NoError(t, r.DoString(`runReturnSpell()`))

	assert.Equal(t, 1, b.runs)
	require.Len(t, b.args, 2)
	assert.Equal(t, [3]any{3.0, 5.0, 5.0}, b.args[0])
	assert.Equal(t, [3]any{"7", 2.5, nil}, b.args[1])
}

func TestRuntimeGetReturnPoint(t *testing.T) {
	b := &fakeBinding{point: core.NewReturnPoint(4, 6, 9)}
	r := NewRuntime(b, nil, nil)

	require.NoError(t, r.DoString(`
		local p = getReturnPoint()
		if p.mapId ~= 4 or p.x ~= 6 or p.y ~= 9 then
			error("unexpected point")
		end
	`))
}

func TestRuntimeRunErrorRaised(t *testing.T) {
	b := &fakeBinding{runErr: errors.New("cue missing")}
	r := NewRuntime(b, nil, nil)

	err := r.DoString(`runReturnSpell()`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cue missing")

	// pcall catches it inside Lua
	require.NoError(t, r.DoString(`assert(not pcall(runReturnSpell))`))
}

func TestRuntimePrintLogs(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	r := NewRuntime(&fakeBinding{}, nil, zap.New(obs))

	require.NoError(t, r.DoString(`print("hello", 42)`))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello\t42", logs.All()[0].Message)
}

func TestRuntimeSyntaxError(t *testing.T) {
	r := NewRuntime(&fakeBinding{}, nil, nil)
	assert.Error(t, r.DoString(`this is not lua`))
}

func TestScriptServiceStartup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "init.lua")
	require.NoError(t, os.WriteFile(path, []byte("setReturnPoint(2, 3, 4)\n"), 0644))

	b := &fakeBinding{}
	svc := NewService(b, nil, nil)
	require.NoError(t, svc.Init(path))
	require.NoError(t, svc.Start())
	require.NotNil(t, svc.Runtime())
	require.NoError(t, svc.RunStartup())
	require.NoError(t, svc.Stop())

	require.Len(t, b.args, 1)
	assert.Equal(t, [3]any{2.0, 3.0, 4.0}, b.args[0])
}

func TestScriptServiceMissingFile(t *testing.T) {
	svc := NewService(&fakeBinding{}, nil, nil)
	require.NoError(t, svc.Init(filepath.Join(t.TempDir(), "missing.lua")))
	assert.Error(t, svc.Start())
}

func TestScriptServiceNoStartup(t *testing.T) {
	svc := NewService(&fakeBinding{}, nil, nil)
	require.NoError(t, svc.Init())
	require.NoError(t, svc.Start())
	assert.NoError(t, svc.RunStartup())
}

type recordingEmitter struct {
	types    []event.EventType
	payloads []any
}

func (e *recordingEmitter) Push(et event.EventType, payload any) {
	e.types = append(e.types, et)
	e.payloads = append(e.payloads, payload)
}

func TestRuntimePushEvent(t *testing.T) {
	emit := &recordingEmitter{}
	r := NewRuntime(&fakeBinding{}, emit, nil)

	require.NoError(t, r.DoString(`pushEvent("BattleToggle")`))
	require.NoError(t, r.DoString(`pushEvent("EventMessageRequest", {text = "hi"})`))
	require.NoError(t, r.DoString(`
		pushEvent("PluginCommand", {
			plugin = "SimpleReturnSpell",
			command = "setReturnPoint",
			args = {mapId = 2, x = 3, y = 4},
		})
	`))

	require.Equal(t, []event.EventType{event.EventBattleToggle, event.EventMessageRequest, event.EventPluginCommand}, emit.types)
	assert.Nil(t, emit.payloads[0])
	assert.Equal(t, "hi", emit.payloads[1].(*event.MessageRequestPayload).Text)

	cmd := emit.payloads[2].(*event.PluginCommandPayload)
	assert.Equal(t, "setReturnPoint", cmd.Command)
	assert.Equal(t, map[string]any{"mapId": int64(2), "x": int64(3), "y": int64(4)}, cmd.Args)
}

func TestRuntimePushEventErrors(t *testing.T) {
	emit := &recordingEmitter{}
	r := NewRuntime(&fakeBinding{}, emit, nil)

	assert.Error(t, r.DoString(`pushEvent("NoSuchEvent")`))
	assert.Error(t, r.DoString(`pushEvent("SaveRequest", {bogus = 1})`))
	assert.Error(t, r.DoString(`pushEvent("QuitRequest", {slot = 1})`))
	assert.Empty(t, emit.types)

	// without an emitter the global is absent
	bare := NewRuntime(&fakeBinding{}, nil, nil)
	assert.Error(t, bare.DoString(`pushEvent("BattleToggle")`))
}
