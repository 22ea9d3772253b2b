package rilbinder_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/henrylee2cn/rilbinder"
	"github.com/henrylee2cn/rilbinder/binder"
	"github.com/henrylee2cn/rilbinder/binder/bindertest"
	"github.com/henrylee2cn/rilbinder/hidl"
	"github.com/henrylee2cn/rilbinder/radio"
	"github.com/henrylee2cn/rilbinder/ril"
	"github.com/henrylee2cn/rilbinder/wire"
)

type response struct {
	typ    ril.ResponseType
	serial int32
	status int32
	data   []byte
}

type indication struct {
	typ  ril.IndicationType
	code uint32
	data []byte
}

type testSink struct {
	mu           sync.Mutex
	connected    []int
	disconnected int
	responses    []response
	indications  []indication
}

func (s *testSink) Connected(rilVersion int) {
	s.mu.Lock()
	s.connected = append(s.connected, rilVersion)
	s.mu.Unlock()
}

func (s *testSink) Disconnected() {
	s.mu.Lock()
	s.disconnected++
	s.mu.Unlock()
}

func (s *testSink) Response(typ ril.ResponseType, serial int32, status int32, data []byte) {
	s.mu.Lock()
	s.responses = append(s.responses, response{typ, serial, status, append([]byte(nil), data...)})
	s.mu.Unlock()
}

func (s *testSink) Indication(typ ril.IndicationType, code uint32, data []byte) {
	s.mu.Lock()
	s.indications = append(s.indications, indication{typ, code, append([]byte(nil), data...)})
	s.mu.Unlock()
}

func (s *testSink) Responses() []response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]response(nil), s.responses...)
}

func (s *testSink) Indications() []indication {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]indication(nil), s.indications...)
}

type testChannel struct {
	mu       sync.Mutex
	enabled  bool
	handlers map[uint64]func(bool)
	nextID   uint64
}

func (c *testChannel) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

func (c *testChannel) AddEnabledHandler(fn func(enabled bool)) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handlers == nil {
		c.handlers = make(map[uint64]func(bool))
	}
	c.nextID++
	c.handlers[c.nextID] = fn
	return c.nextID
}

func (c *testChannel) RemoveHandler(id uint64) {
	c.mu.Lock()
	delete(c.handlers, id)
	c.mu.Unlock()
}

func (c *testChannel) set(enabled bool) {
	c.mu.Lock()
	c.enabled = enabled
	fns := make([]func(bool), 0, len(c.handlers))
	for _, fn := range c.handlers {
		fns = append(fns, fn)
	}
	c.mu.Unlock()
	for _, fn := range fns {
		fn(enabled)
	}
}

func legacy(fn func(w *wire.Writer)) []byte {
	w := wire.NewWriter()
	fn(w)
	return w.Bytes()
}

func responseWriter(typ radio.RespType, serial, errno int32) *hidl.Writer {
	w := hidl.NewWriter()
	w.AppendStruct(hidl.NewStruct(radio.ResponseInfoShape).
		SetInt("type", int64(typ)).
		SetInt("serial", int64(serial)).
		SetInt("error", int64(errno)))
	return w
}

func findLocal(sm *bindertest.ServiceManager, iface string) *bindertest.Local {
	for _, l := range sm.Locals() {
		if l.Iface() == iface {
			return l
		}
	}
	return nil
}

func newSession(t *testing.T, v radio.Version, modem string) (*bindertest.ServiceManager, *bindertest.Remote, *rilbinder.Session, *testSink) {
	sm := bindertest.NewServiceManager()
	remote := sm.AddService(radio.FQName(v, "slot1"))
	sink := new(testSink)
	s, err := rilbinder.NewSession(sm, &rilbinder.Config{Modem: modem}, sink)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	return sm, remote, s, sink
}

func TestSessionSend(t *testing.T) {
	_, remote, s, sink := newSession(t, radio.V1_4, "/send")
	defer s.Shutdown(false)
	assert.Equal(t, radio.V1_4, s.Version())
	assert.False(t, s.Connected())

	stat := s.Send(ril.RequestRadioPower, 7, legacy(func(w *wire.Writer) {
		w.AppendInt32s(1)
	}))
	assert.Nil(t, stat)
	tx, ok := remote.Last()
	if assert.True(t, ok) {
		assert.Equal(t, radio.ReqSetRadioPower, tx.Code)
		assert.Equal(t, binder.FlagOneway, tx.Flags)
		r := tx.Reader()
		serial, _ := r.ReadInt32()
		on, _ := r.ReadBool()
		assert.Equal(t, int32(7), serial)
		assert.True(t, on)
	}
	s.Flush()
	assert.Empty(t, sink.Responses())

	stats := s.Stats()
	if assert.Len(t, stats, 1) {
		assert.Equal(t, "setRadioPower", stats[0].Name)
		assert.Equal(t, 1, stats[0].Count)
		assert.Equal(t, 0, stats[0].Failures)
	}
}

func TestSessionGenericFailure(t *testing.T) {
	_, remote, s, sink := newSession(t, radio.V1_0, "/failure")
	defer s.Shutdown(false)
	n := len(remote.Transactions())

	var cases = []struct {
		code   uint32
		serial int32
		data   []byte
		stat   int32
	}{
		{9999, 1, nil, rilbinder.CodeUnknownCommand},
		{ril.RequestRadioPower, 2, nil, rilbinder.CodeEncodeFailed},
		{ril.RequestOemHookRaw, 3, []byte{1, 2}, rilbinder.CodeNoOemHook},
	}
	for _, c := range cases {
		stat := s.Send(c.code, c.serial, c.data)
		if assert.NotNil(t, stat) {
			assert.Equal(t, c.stat, stat.Code())
			assert.False(t, rilbinder.IsConnError(stat))
		}
	}
	s.Flush()
	assert.Len(t, remote.Transactions(), n)
	assert.Equal(t, []response{
		{ril.ResponseSolicited, 1, ril.ErrGenericFailure, nil},
		{ril.ResponseSolicited, 2, ril.ErrGenericFailure, nil},
		{ril.ResponseSolicited, 3, ril.ErrGenericFailure, nil},
	}, sink.Responses())

	remote.Fail = binder.ErrDead
	stat := s.Send(ril.RequestRadioPower, 4, legacy(func(w *wire.Writer) {
		w.AppendInt32s(0)
	}))
	if assert.NotNil(t, stat) {
		assert.Equal(t, rilbinder.CodeTransactionFailed, stat.Code())
	}
	s.Flush()
	assert.Len(t, sink.Responses(), 4)
}

func TestSessionResponse(t *testing.T) {
	sm, remote, s, sink := newSession(t, radio.V1_4, "/response")
	defer s.Shutdown(false)
	resp := findLocal(sm, radio.V1_4.Iface(radio.IRadioResponse))
	if !assert.NotNil(t, resp) {
		return
	}

	w := responseWriter(radio.RespSolicited, 11, radio.ErrorNone)
	w.AppendString("Operator")
	w.AppendString("Op")
	w.AppendString("25001")
	assert.Equal(t, binder.StatusOK, resp.Deliver(radio.V1_0.Iface(radio.IRadioResponse), radio.RespGetOperator, w.Parcel()))

	// The first response stands in for a missing rilConnected.
	assert.True(t, s.Connected())
	assert.Equal(t, []int{int(radio.V1_4) + ril.VersionOffset}, sink.connected)
	assert.Equal(t, int(radio.V1_4)+ril.VersionOffset, s.RilVersion())
	want := legacy(func(w *wire.Writer) {
		w.AppendInt32(3)
		w.AppendUtf8("Operator")
		w.AppendUtf8("Op")
		w.AppendUtf8("25001")
	})
	assert.Equal(t, []response{{ril.ResponseSolicited, 11, 0, want}}, sink.Responses())

	// Unknown transactions and undecodable payloads are dropped.
	n := len(remote.Transactions())
	resp.Deliver(radio.V1_0.Iface(radio.IRadioResponse), 9999, responseWriter(radio.RespSolicited, 12, 0).Parcel())
	resp.Deliver(radio.V1_0.Iface(radio.IRadioResponse), radio.RespGetOperator, responseWriter(radio.RespSolicited, 13, 0).Parcel())
	assert.Len(t, sink.Responses(), 1)
	assert.Len(t, remote.Transactions(), n)

	// A dropped ACK_EXP response is still acknowledged.
	resp.Deliver(radio.V1_0.Iface(radio.IRadioResponse), 9999, responseWriter(radio.RespSolicitedAckExp, 14, 0).Parcel())
	tx, _ := remote.Last()
	assert.Equal(t, radio.ReqResponseAcknowledgement, tx.Code)

	// acknowledgeRequest turns into SOLICITED_ACK.
	w = hidl.NewWriter()
	w.AppendInt32(15)
	resp.Deliver(radio.V1_0.Iface(radio.IRadioResponse), radio.RespAcknowledgeRequest, w.Parcel())
	responses := sink.Responses()
	assert.Equal(t, response{ril.ResponseSolicitedAck, 15, ril.ErrSuccess, nil}, responses[len(responses)-1])
	assert.Len(t, sink.connected, 1)
}

func TestSessionIndication(t *testing.T) {
	sm, remote, s, sink := newSession(t, radio.V1_2, "/indication")
	defer s.Shutdown(false)
	ind := findLocal(sm, radio.V1_2.Iface(radio.IRadioIndication))
	if !assert.NotNil(t, ind) {
		return
	}
	iface := radio.V1_0.Iface(radio.IRadioIndication)

	w := hidl.NewWriter()
	w.AppendUint32(uint32(radio.IndUnsolicited))
	ind.Deliver(iface, radio.IndRilConnected, w.Parcel())
	ind.Deliver(iface, radio.IndRilConnected, w.Parcel())
	assert.Equal(t, []int{int(radio.V1_2) + ril.VersionOffset}, sink.connected)

	w = hidl.NewWriter()
	w.AppendUint32(uint32(radio.IndAckExp))
	w.AppendInt32(10)
	n := len(remote.Transactions())
	ind.Deliver(iface, radio.IndRadioStateChanged, w.Parcel())
	assert.Equal(t, []indication{{
		ril.IndicationUnsolicitedAckExp,
		ril.UnsolRadioStateChanged,
		legacy(func(w *wire.Writer) { w.AppendInt32(10) }),
	}}, sink.indications)
	assert.Len(t, remote.Transactions(), n)

	// Unknown indications are dropped and acknowledged when asked to.
	ind.Deliver(iface, 9999, w.Parcel())
	assert.Len(t, sink.indications, 1)
	tx, _ := remote.Last()
	assert.Equal(t, radio.ReqResponseAcknowledgement, tx.Code)

	// Truncated payload.
	w = hidl.NewWriter()
	w.AppendUint32(uint32(radio.IndUnsolicited))
	ind.Deliver(iface, radio.IndRadioStateChanged, w.Parcel())
	assert.Len(t, sink.indications, 1)
}

func TestSessionImplicitConnectOnIndication(t *testing.T) {
	sm, _, s, sink := newSession(t, radio.V1_0, "/implicit")
	defer s.Shutdown(false)
	ind := findLocal(sm, radio.V1_0.Iface(radio.IRadioIndication))
	w := hidl.NewWriter()
	w.AppendUint32(uint32(radio.IndUnsolicited))
	w.AppendInt32(2)
	ind.Deliver(radio.V1_0.Iface(radio.IRadioIndication), radio.IndRadioStateChanged, w.Parcel())
	assert.Equal(t, []int{ril.VersionOffset}, sink.connected)
	assert.Len(t, sink.indications, 1)
}

func TestSessionDeath(t *testing.T) {
	sm, remote, s, sink := newSession(t, radio.V1_4, "/death")
	_, ok := rilbinder.Sessions.Get("/death")
	assert.True(t, ok)

	remote.Kill()
	s.Shutdown(true)
	s.Shutdown(false)
	assert.Equal(t, 1, sink.disconnected)
	assert.False(t, s.Connected())
	_, ok = rilbinder.Sessions.Get("/death")
	assert.False(t, ok)
	for _, l := range sm.Locals() {
		assert.True(t, l.Dropped())
	}

	stat := s.Send(ril.RequestRadioPower, 1, nil)
	if assert.NotNil(t, stat) {
		assert.Equal(t, rilbinder.CodeNotConnected, stat.Code())
		assert.True(t, rilbinder.IsConnError(stat))
	}
	s.Flush()
	assert.Empty(t, sink.Responses())
}

func TestSessionShutdownTwice(t *testing.T) {
	_, remote, s, sink := newSession(t, radio.V1_4, "/shutdown")
	s.Shutdown(false)
	s.Shutdown(false)
	remote.Kill()
	assert.Equal(t, 1, sink.disconnected)
}

func TestSessionChannel(t *testing.T) {
	_, _, s, _ := newSession(t, radio.V1_4, "/channel")
	defer s.Shutdown(false)
	ch := &testChannel{enabled: true}
	s.SetChannel(ch)
	assert.True(t, s.Enabled())
	ch.set(false)
	assert.False(t, s.Enabled())
	ch.set(true)
	assert.True(t, s.Enabled())

	s.SetChannel(nil)
	assert.False(t, s.Enabled())
	assert.Empty(t, ch.handlers)
	ch.set(true)
	assert.False(t, s.Enabled())
}

func TestSessionOemHook(t *testing.T) {
	sm := bindertest.NewServiceManager()
	remote := sm.AddService(radio.FQName(radio.V1_4, "slot1"))
	hook := sm.AddService(radio.IOemHook + "/slot1")
	sink := new(testSink)
	s, err := rilbinder.NewSession(sm, &rilbinder.Config{Modem: "/oemhook"}, sink)
	if !assert.NoError(t, err) {
		return
	}
	defer s.Shutdown(false)
	assert.True(t, s.HasOemHook())
	tx, ok := hook.Last()
	if assert.True(t, ok) {
		assert.Equal(t, radio.OemHookReqSetResponseFunctions, tx.Code)
	}

	assert.Nil(t, s.Send(ril.RequestOemHookRaw, 3, []byte{0xde, 0xad}))
	tx, _ = hook.Last()
	assert.Equal(t, radio.OemHookReqSendRequestRaw, tx.Code)
	assert.Equal(t, binder.FlagOneway, tx.Flags)
	r := tx.Reader()
	serial, _ := r.ReadInt32()
	data, _ := r.ReadByteVec()
	assert.Equal(t, int32(3), serial)
	assert.Equal(t, []byte{0xde, 0xad}, data)

	resp := findLocal(sm, radio.IOemHookResponse)
	w := responseWriter(radio.RespSolicited, 3, 0)
	w.AppendByteVec([]byte{0xbe, 0xef})
	assert.Equal(t, binder.StatusOK, resp.Deliver(radio.IOemHookResponse, radio.OemHookRespSendRequestRaw, w.Parcel()))
	assert.Equal(t, []response{{ril.ResponseSolicited, 3, 0, []byte{0xbe, 0xef}}}, sink.Responses())
	assert.Equal(t, binder.StatusFailed, resp.Deliver(radio.V1_0.Iface(radio.IRadioResponse), radio.OemHookRespSendRequestRaw, w.Parcel()))

	ind := findLocal(sm, radio.IOemHookIndication)
	w = hidl.NewWriter()
	w.AppendUint32(uint32(radio.IndAckExp))
	w.AppendByteVec([]byte("0123456789abcdefXYZ"))
	assert.Equal(t, binder.StatusOK, ind.Deliver(radio.IOemHookIndication, radio.OemHookIndOemHookRaw, w.Parcel()))
	tx, _ = remote.Last()
	assert.Equal(t, radio.ReqResponseAcknowledgement, tx.Code)
	assert.Empty(t, sink.indications)

	// The radio carries on without the hook.
	hook.Kill()
	stat := s.Send(ril.RequestOemHookRaw, 4, []byte{1})
	if assert.NotNil(t, stat) {
		assert.Equal(t, rilbinder.CodeTransactionFailed, stat.Code())
	}
	s.Flush()
	responses := sink.Responses()
	assert.Equal(t, response{ril.ResponseSolicited, 4, ril.ErrGenericFailure, nil}, responses[len(responses)-1])
	assert.Equal(t, 0, sink.disconnected)
	assert.Nil(t, s.Send(ril.RequestRadioPower, 5, legacy(func(w *wire.Writer) { w.AppendInt32s(1) })))
}

func TestNewSessionNoService(t *testing.T) {
	sm := bindertest.NewServiceManager()
	sm.AddService(radio.FQName(radio.V1_4, "slot2"))
	s, err := rilbinder.NewSession(sm, nil, new(testSink))
	assert.Error(t, err)
	assert.Nil(t, s)

	s, err = rilbinder.NewSession(sm, &rilbinder.Config{Name: "slot2", Interface: "radio@1.2", Modem: "/ceiling"}, new(testSink))
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestSessionHub(t *testing.T) {
	before := rilbinder.Sessions.Len()
	_, _, s, _ := newSession(t, radio.V1_2, "/hub")
	assert.Equal(t, before+1, rilbinder.Sessions.Len())
	got, ok := rilbinder.Sessions.Get("/hub")
	assert.True(t, ok)
	assert.Equal(t, s, got)

	var modems []string
	rilbinder.Sessions.Range(func(modem string, _ *rilbinder.Session) bool {
		modems = append(modems, modem)
		return true
	})
	assert.Contains(t, modems, "/hub")

	s.Shutdown(true)
	assert.Equal(t, before, rilbinder.Sessions.Len())
	_, ok = rilbinder.Sessions.Get("/hub")
	assert.False(t, ok)
}

func TestSessionConcurrentSink(t *testing.T) {
	sm, _, s, sink := newSession(t, radio.V1_0, "/concurrent")
	defer s.Shutdown(false)
	iface := radio.V1_0.Iface(radio.IRadioIndication)
	ind := findLocal(sm, iface)
	const n = 50
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			s.Send(9999, int32(i), nil)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			w := hidl.NewWriter()
			w.AppendUint32(uint32(radio.IndUnsolicited))
			w.AppendInt32(2)
			ind.Deliver(iface, radio.IndRadioStateChanged, w.Parcel())
		}
	}()
	wg.Wait()
	s.Flush()
	assert.Len(t, sink.Responses(), n)
	assert.Len(t, sink.Indications(), n)
}
