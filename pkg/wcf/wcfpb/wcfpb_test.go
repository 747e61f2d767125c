package wcfpb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestRequestWireFormat(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want []byte
	}{
		{"no payload", Request{Func: FuncIsLogin}, []byte{0x08, 0x01}},
		{"empty", Request{Func: FuncIsLogin, Msg: Empty{}}, []byte{0x08, 0x01, 0x12, 0x00}},
		{"flag true", Request{Func: FuncEnableRecvTxt, Msg: Flag(true)}, []byte{0x08, 0x30, 0x68, 0x01}},
		{"flag false kept", Request{Func: FuncEnableRecvTxt, Msg: Flag(false)}, []byte{0x08, 0x30, 0x68, 0x00}},
		{"str", Request{Func: FuncGetDBTables, Msg: Str("a")}, []byte{0x08, 0x14, 0x1a, 0x01, 'a'}},
		{"ui64", Request{Func: FuncRefreshPyq, Msg: UI64(300)}, []byte{0x08, 0x53, 0x60, 0xac, 0x02}},
		{"reserved func omitted", Request{}, []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.req.Marshal()
			require.NoError(t, err)
			assert.Equal(t, tt.want, append([]byte{}, got...))
		})
	}
}

func TestRequestMessagePayload(t *testing.T) {
	req := Request{Func: FuncSendTxt, Msg: &TextMsg{Msg: "hi", Receiver: "wxid_a"}}
	b, err := req.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalRequest(b)
	require.NoError(t, err)
	assert.Equal(t, FuncSendTxt, decoded.Func)
	txt, ok := decoded.Msg.(*TextMsg)
	require.True(t, ok, "got %T", decoded.Msg)
	assert.Equal(t, "hi", txt.Msg)
	assert.Equal(t, "wxid_a", txt.Receiver)
	assert.Empty(t, txt.Aters)
}

func TestResponseStatusZeroIsPresent(t *testing.T) {
	b, err := (&Response{Func: FuncIsLogin, Msg: Status(0)}).Marshal()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x08, 0x01, 0x10, 0x00}, b)

	resp, err := UnmarshalResponse(b)
	require.NoError(t, err)
	code, ok := resp.StatusCode()
	assert.True(t, ok)
	assert.Zero(t, code)
	assert.True(t, resp.HasPayload())
}

func TestResponseNegativeStatus(t *testing.T) {
	b, err := (&Response{Msg: Status(-1)}).Marshal()
	require.NoError(t, err)
	resp, err := UnmarshalResponse(b)
	require.NoError(t, err)
	code, ok := resp.StatusCode()
	assert.True(t, ok)
	assert.Equal(t, int32(-1), code)
}

func TestResponseUnknownTagIsNoData(t *testing.T) {
	b := protowire.AppendTag(nil, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(FuncIsLogin))
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendString(b, "future")
	b = protowire.AppendTag(b, 100, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 7)

	resp, err := UnmarshalResponse(b)
	require.NoError(t, err)
	assert.Equal(t, FuncIsLogin, resp.Func)
	assert.False(t, resp.HasPayload())
	_, ok := resp.StatusCode()
	assert.False(t, ok)
}

func TestResponseWrongWireTypeIsNoData(t *testing.T) {
	// Field 4 (wxmsg) sent as a varint.
	b := protowire.AppendTag(nil, 4, protowire.VarintType)
	b = protowire.AppendVarint(b, 1)
	resp, err := UnmarshalResponse(b)
	require.NoError(t, err)
	assert.Nil(t, resp.WxMsg())
	assert.False(t, resp.HasPayload())
}

func TestResponseMalformed(t *testing.T) {
	_, err := UnmarshalResponse([]byte{0x22, 0x05, 0x01})
	assert.Error(t, err)

	_, err = UnmarshalResponse([]byte{0xff})
	assert.Error(t, err)
}

func TestResponseWxMsgFromWire(t *testing.T) {
	var inner []byte
	inner = protowire.AppendTag(inner, 2, protowire.VarintType)
	inner = protowire.AppendVarint(inner, 1)
	inner = protowire.AppendTag(inner, 3, protowire.VarintType)
	inner = protowire.AppendVarint(inner, 1234567890123)
	inner = protowire.AppendTag(inner, 4, protowire.VarintType)
	inner = protowire.AppendVarint(inner, 1)
	inner = protowire.AppendTag(inner, 6, protowire.BytesType)
	inner = protowire.AppendString(inner, "123@chatroom")
	inner = protowire.AppendTag(inner, 7, protowire.BytesType)
	inner = protowire.AppendString(inner, "hello")
	inner = protowire.AppendTag(inner, 8, protowire.BytesType)
	inner = protowire.AppendString(inner, "wxid_sender")

	b := protowire.AppendTag(nil, 4, protowire.BytesType)
	b = protowire.AppendBytes(b, inner)

	resp, err := UnmarshalResponse(b)
	require.NoError(t, err)
	msg := resp.WxMsg()
	require.NotNil(t, msg)
	assert.True(t, msg.IsGroup)
	assert.False(t, msg.IsSelf)
	assert.Equal(t, uint64(1234567890123), msg.ID)
	assert.Equal(t, uint32(1), msg.Type)
	assert.Equal(t, "123@chatroom", msg.RoomID)
	assert.Equal(t, "hello", msg.Content)
	assert.Equal(t, "wxid_sender", msg.Sender)
}

func TestLenientAccessors(t *testing.T) {
	resp := &Response{Msg: Status(1)}
	s, ok := resp.Str()
	assert.False(t, ok)
	assert.Empty(t, s)
	assert.Nil(t, resp.WxMsg())
	assert.Nil(t, resp.UserInfo())
	assert.Nil(t, resp.Contacts())
	assert.Nil(t, resp.DBNames())
	assert.Nil(t, resp.DBTables())
	assert.Nil(t, resp.DBRows())
	assert.Nil(t, resp.MsgTypes())
	assert.Nil(t, resp.OCR())

	var nilResp *Response
	assert.False(t, nilResp.HasPayload())
	assert.Nil(t, nilResp.WxMsg())
}

func TestMsgTypesMap(t *testing.T) {
	entry := func(k int32, v string) []byte {
		e := protowire.AppendTag(nil, 1, protowire.VarintType)
		e = protowire.AppendVarint(e, uint64(int64(k)))
		e = protowire.AppendTag(e, 2, protowire.BytesType)
		return protowire.AppendString(e, v)
	}
	var inner []byte
	inner = protowire.AppendTag(inner, 1, protowire.BytesType)
	inner = protowire.AppendBytes(inner, entry(1, "text"))
	inner = protowire.AppendTag(inner, 1, protowire.BytesType)
	inner = protowire.AppendBytes(inner, entry(3, "image"))
	b := protowire.AppendTag(nil, 5, protowire.BytesType)
	b = protowire.AppendBytes(b, inner)

	resp, err := UnmarshalResponse(b)
	require.NoError(t, err)
	assert.Equal(t, map[int32]string{1: "text", 3: "image"}, resp.MsgTypes())
}

func TestDbRowsNested(t *testing.T) {
	rows := &DbRows{Rows: []*DbRow{{Fields: []*DbField{
		{Type: ColumnText, Column: "UserName", Content: []byte("wxid_a")},
		{Type: ColumnInteger, Column: "Type", Content: []byte("3")},
		{Type: ColumnNull, Column: "Remark"},
	}}}}
	b, err := (&Response{Func: FuncExecDBQuery, Msg: rows}).Marshal()
	require.NoError(t, err)

	resp, err := UnmarshalResponse(b)
	require.NoError(t, err)
	got := resp.DBRows()
	require.Len(t, got, 1)
	require.Len(t, got[0].Fields, 3)
	assert.Equal(t, "wxid_a", got[0].Fields[0].Value())
	assert.Equal(t, int64(3), got[0].Fields[1].Value())
	assert.Nil(t, got[0].Fields[2].Value())
}

func TestDbFieldValue(t *testing.T) {
	assert.Equal(t, int64(12), (&DbField{Type: ColumnInteger, Content: []byte("12")}).Value())
	assert.Equal(t, 1.5, (&DbField{Type: ColumnFloat, Content: []byte("1.5")}).Value())
	assert.Equal(t, []byte{1, 2}, (&DbField{Type: ColumnBlob, Content: []byte{1, 2}}).Value())
	assert.Equal(t, int64(0), (&DbField{Type: ColumnInteger, Content: []byte("x")}).Value())

	_, ok := (&DbField{Type: ColumnInteger, Content: []byte("")}).Int()
	assert.False(t, ok)
	assert.Nil(t, (*DbField)(nil).Value())
}

func TestRoomData(t *testing.T) {
	rd := &RoomData{
		Members: []*RoomMember{
			{Wxid: "wxid_a", Name: "A"},
			{Wxid: "wxid_b", State: 1},
		},
		RoomCapacity: 500,
	}
	got, err := UnmarshalRoomData(rd.Marshal())
	require.NoError(t, err)
	assert.Equal(t, rd, got)

	_, err = UnmarshalRoomData([]byte{0x0a, 0x09})
	assert.Error(t, err)
}

func TestFunctionString(t *testing.T) {
	assert.Equal(t, "FUNC_IS_LOGIN", FuncIsLogin.String())
	assert.Equal(t, "FUNC_0x99", Function(0x99).String())
}
