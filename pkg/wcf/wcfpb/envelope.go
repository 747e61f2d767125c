package wcfpb

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// RequestPayload is the request oneof. The set of implementations is closed:
// Empty, Str, UI64, Flag and the request message pointers in this package.
type RequestPayload interface {
	isRequestPayload()
}

// ResponsePayload is the response oneof. The set of implementations is
// closed: Status, Str and the response message pointers in this package.
type ResponsePayload interface {
	isResponsePayload()
}

type (
	// Empty is the explicit "no arguments" request payload.
	Empty struct{}
	// Str carries a bare string in either direction.
	Str string
	// UI64 carries a bare uint64 request argument.
	UI64 uint64
	// Flag carries a bare boolean request argument.
	Flag bool
	// Status is the integer result code most commands return.
	Status int32
)

func (Empty) isRequestPayload()         {}
func (Str) isRequestPayload()           {}
func (UI64) isRequestPayload()          {}
func (Flag) isRequestPayload()          {}
func (*TextMsg) isRequestPayload()      {}
func (*PathMsg) isRequestPayload()      {}
func (*DbQuery) isRequestPayload()      {}
func (*Verification) isRequestPayload() {}
func (*MemberMgmt) isRequestPayload()   {}
func (*XmlMsg) isRequestPayload()       {}
func (*DecPath) isRequestPayload()      {}
func (*Transfer) isRequestPayload()     {}
func (*AttachMsg) isRequestPayload()    {}
func (*AudioMsg) isRequestPayload()     {}
func (*RichText) isRequestPayload()     {}
func (*PatMsg) isRequestPayload()       {}
func (*ForwardMsg) isRequestPayload()   {}

func (Status) isResponsePayload()       {}
func (Str) isResponsePayload()          {}
func (*WxMsg) isResponsePayload()       {}
func (*MsgTypes) isResponsePayload()    {}
func (*RpcContacts) isResponsePayload() {}
func (*DbNames) isResponsePayload()     {}
func (*DbTables) isResponsePayload()    {}
func (*DbRows) isResponsePayload()      {}
func (*UserInfo) isResponsePayload()    {}
func (*OcrMsg) isResponsePayload()      {}

// Request is the command-channel request envelope.
type Request struct {
	Func Function
	Msg  RequestPayload
}

// Marshal encodes the request in protobuf wire format.
func (r *Request) Marshal() ([]byte, error) {
	b := appendInt32(nil, 1, int32(r.Func))
	switch m := r.Msg.(type) {
	case nil:
	case Empty:
		b = appendBytesAlways(b, 2, nil)
	case Str:
		b = appendStringAlways(b, 3, string(m))
	case *TextMsg:
		b = appendMessage(b, 4, m)
	case *PathMsg:
		b = appendMessage(b, 5, m)
	case *DbQuery:
		b = appendMessage(b, 6, m)
	case *Verification:
		b = appendMessage(b, 7, m)
	case *MemberMgmt:
		b = appendMessage(b, 8, m)
	case *XmlMsg:
		b = appendMessage(b, 9, m)
	case *DecPath:
		b = appendMessage(b, 10, m)
	case *Transfer:
		b = appendMessage(b, 11, m)
	case UI64:
		b = appendVarintAlways(b, 12, uint64(m))
	case Flag:
		b = appendVarintAlways(b, 13, protowire.EncodeBool(bool(m)))
	case *AttachMsg:
		b = appendMessage(b, 14, m)
	case *AudioMsg:
		b = appendMessage(b, 15, m)
	case *RichText:
		b = appendMessage(b, 16, m)
	case *PatMsg:
		b = appendMessage(b, 17, m)
	case *ForwardMsg:
		b = appendMessage(b, 18, m)
	default:
		return nil, fmt.Errorf("wcfpb: unsupported request payload %T", r.Msg)
	}
	return b, nil
}

// UnmarshalRequest decodes a request envelope. It exists for fakes that play
// the SDK side.
func UnmarshalRequest(b []byte) (*Request, error) {
	req := &Request{}
	err := walk(b, func(f field) error {
		if f.num == 1 {
			req.Func = Function(f.int32())
			return nil
		}
		msg, err := decodeRequestPayload(f)
		if err != nil {
			return err
		}
		if msg != nil {
			req.Msg = msg
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("wcfpb: decode request: %w", err)
	}
	return req, nil
}

func decodeRequestPayload(f field) (RequestPayload, error) {
	var m interface {
		RequestPayload
		unmarshal([]byte) error
	}
	switch f.num {
	case 2:
		return Empty{}, nil
	case 3:
		return Str(f.str()), nil
	case 12:
		return UI64(f.uint64()), nil
	case 13:
		return Flag(f.bool()), nil
	case 4:
		m = new(TextMsg)
	case 5:
		m = new(PathMsg)
	case 6:
		m = new(DbQuery)
	case 7:
		m = new(Verification)
	case 8:
		m = new(MemberMgmt)
	case 9:
		m = new(XmlMsg)
	case 10:
		m = new(DecPath)
	case 11:
		m = new(Transfer)
	case 14:
		m = new(AttachMsg)
	case 15:
		m = new(AudioMsg)
	case 16:
		m = new(RichText)
	case 17:
		m = new(PatMsg)
	case 18:
		m = new(ForwardMsg)
	default:
		return nil, nil
	}
	if !f.isMessage() {
		return nil, nil
	}
	if err := m.unmarshal(f.b); err != nil {
		return nil, err
	}
	return m, nil
}

// Response is the envelope received on both channels.
type Response struct {
	Func Function
	Msg  ResponsePayload
}

// Marshal encodes the response. The client never sends responses; fakes do.
func (r *Response) Marshal() ([]byte, error) {
	b := appendInt32(nil, 1, int32(r.Func))
	switch m := r.Msg.(type) {
	case nil:
	case Status:
		b = appendVarintAlways(b, 2, uint64(int64(m)))
	case Str:
		b = appendStringAlways(b, 3, string(m))
	case *WxMsg:
		b = appendMessage(b, 4, m)
	case *MsgTypes:
		b = appendMessage(b, 5, m)
	case *RpcContacts:
		b = appendMessage(b, 6, m)
	case *DbNames:
		b = appendMessage(b, 7, m)
	case *DbTables:
		b = appendMessage(b, 8, m)
	case *DbRows:
		b = appendMessage(b, 9, m)
	case *UserInfo:
		b = appendMessage(b, 10, m)
	case *OcrMsg:
		b = appendMessage(b, 11, m)
	default:
		return nil, fmt.Errorf("wcfpb: unsupported response payload %T", r.Msg)
	}
	return b, nil
}

// UnmarshalResponse decodes a response envelope. Only malformed wire data is
// an error; unknown payload tags leave Msg nil.
func UnmarshalResponse(b []byte) (*Response, error) {
	resp := &Response{}
	err := walk(b, func(f field) error {
		if f.num == 1 {
			resp.Func = Function(f.int32())
			return nil
		}
		msg, err := decodeResponsePayload(f)
		if err != nil {
			return err
		}
		if msg != nil {
			resp.Msg = msg
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("wcfpb: decode response: %w", err)
	}
	return resp, nil
}

func decodeResponsePayload(f field) (ResponsePayload, error) {
	var m interface {
		ResponsePayload
		unmarshal([]byte) error
	}
	switch f.num {
	case 2:
		if f.typ != protowire.VarintType {
			return nil, nil
		}
		return Status(f.int32()), nil
	case 3:
		if !f.isMessage() {
			return nil, nil
		}
		return Str(f.str()), nil
	case 4:
		m = new(WxMsg)
	case 5:
		m = new(MsgTypes)
	case 6:
		m = new(RpcContacts)
	case 7:
		m = new(DbNames)
	case 8:
		m = new(DbTables)
	case 9:
		m = new(DbRows)
	case 10:
		m = new(UserInfo)
	case 11:
		m = new(OcrMsg)
	default:
		return nil, nil
	}
	if !f.isMessage() {
		return nil, nil
	}
	if err := m.unmarshal(f.b); err != nil {
		return nil, err
	}
	return m, nil
}

// HasPayload reports whether any payload variant was present.
func (r *Response) HasPayload() bool { return r != nil && r.Msg != nil }

// StatusCode returns the status payload, if that is what the response holds.
func (r *Response) StatusCode() (int32, bool) {
	if r == nil {
		return 0, false
	}
	s, ok := r.Msg.(Status)
	return int32(s), ok
}

// Str returns the string payload or "".
func (r *Response) Str() (string, bool) {
	if r == nil {
		return "", false
	}
	s, ok := r.Msg.(Str)
	return string(s), ok
}

func (r *Response) WxMsg() *WxMsg {
	if r == nil {
		return nil
	}
	m, _ := r.Msg.(*WxMsg)
	return m
}

func (r *Response) MsgTypes() map[int32]string {
	if r == nil {
		return nil
	}
	if m, ok := r.Msg.(*MsgTypes); ok {
		return m.Types
	}
	return nil
}

func (r *Response) Contacts() []*RpcContact {
	if r == nil {
		return nil
	}
	if m, ok := r.Msg.(*RpcContacts); ok {
		return m.Contacts
	}
	return nil
}

func (r *Response) DBNames() []string {
	if r == nil {
		return nil
	}
	if m, ok := r.Msg.(*DbNames); ok {
		return m.Names
	}
	return nil
}

func (r *Response) DBTables() []*DbTable {
	if r == nil {
		return nil
	}
	if m, ok := r.Msg.(*DbTables); ok {
		return m.Tables
	}
	return nil
}

func (r *Response) DBRows() []*DbRow {
	if r == nil {
		return nil
	}
	if m, ok := r.Msg.(*DbRows); ok {
		return m.Rows
	}
	return nil
}

func (r *Response) UserInfo() *UserInfo {
	if r == nil {
		return nil
	}
	m, _ := r.Msg.(*UserInfo)
	return m
}

func (r *Response) OCR() *OcrMsg {
	if r == nil {
		return nil
	}
	m, _ := r.Msg.(*OcrMsg)
	return m
}
