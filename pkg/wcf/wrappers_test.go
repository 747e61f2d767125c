package wcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"
)

func TestStatusWrappersSendTheirPayload(t *testing.T) {
	h := newHarness(t)
	replies := newReplies(nil)
	h.cmd.Handle(replies.handler)
	h.start(t)

	cases := []struct {
		name string
		fn   wcfpb.Function
		call func() (bool, error)
		want wcfpb.RequestPayload
	}{
		{"send text", wcfpb.FuncSendTxt,
			func() (bool, error) { return h.client.SendText("hi @a", "1@chatroom", "wxid_a") },
			&wcfpb.TextMsg{Msg: "hi @a", Receiver: "1@chatroom", Aters: "wxid_a"}},
		{"send file", wcfpb.FuncSendFile,
			func() (bool, error) { return h.client.SendFile(`C:\a.txt`, "wxid_a") },
			&wcfpb.PathMsg{Path: `C:\a.txt`, Receiver: "wxid_a"}},
		{"send xml", wcfpb.FuncSendXML,
			func() (bool, error) { return h.client.SendXML("<msg/>", "", "wxid_a", 21) },
			&wcfpb.XmlMsg{Content: "<msg/>", Receiver: "wxid_a", Type: 21}},
		{"send emotion", wcfpb.FuncSendEmotion,
			func() (bool, error) { return h.client.SendEmotion(`C:\e.gif`, "wxid_a") },
			&wcfpb.PathMsg{Path: `C:\e.gif`, Receiver: "wxid_a"}},
		{"send rich text", wcfpb.FuncSendRichTxt,
			func() (bool, error) {
				return h.client.SendRichText(&wcfpb.RichText{Title: "t", URL: "https://example.com", Receiver: "wxid_a"})
			},
			&wcfpb.RichText{Title: "t", URL: "https://example.com", Receiver: "wxid_a"}},
		{"send pat", wcfpb.FuncSendPatMsg,
			func() (bool, error) { return h.client.SendPat("1@chatroom", "wxid_a") },
			&wcfpb.PatMsg{RoomID: "1@chatroom", Wxid: "wxid_a"}},
		{"forward", wcfpb.FuncForwardMsg,
			func() (bool, error) { return h.client.ForwardMsg(7, "wxid_b") },
			&wcfpb.ForwardMsg{ID: 7, Receiver: "wxid_b"}},
		{"accept friend", wcfpb.FuncAcceptFriend,
			func() (bool, error) { return h.client.AcceptNewFriend("v3", "v4", 30) },
			&wcfpb.Verification{V3: "v3", V4: "v4", Scene: 30}},
		{"add members", wcfpb.FuncAddRoomMembers,
			func() (bool, error) { return h.client.AddChatRoomMembers("1@chatroom", "wxid_a,wxid_b") },
			&wcfpb.MemberMgmt{RoomID: "1@chatroom", Wxids: "wxid_a,wxid_b"}},
		{"invite members", wcfpb.FuncInvRoomMembers,
			func() (bool, error) { return h.client.InviteChatRoomMembers("1@chatroom", "wxid_a") },
			&wcfpb.MemberMgmt{RoomID: "1@chatroom", Wxids: "wxid_a"}},
		{"delete members", wcfpb.FuncDelRoomMembers,
			func() (bool, error) { return h.client.DelChatRoomMembers("1@chatroom", "wxid_a") },
			&wcfpb.MemberMgmt{RoomID: "1@chatroom", Wxids: "wxid_a"}},
		{"decrypt image", wcfpb.FuncDecryptImage,
			func() (bool, error) { return h.client.DecryptImage("a.dat", "out") },
			&wcfpb.DecPath{Src: "a.dat", Dst: "out"}},
		{"receive transfer", wcfpb.FuncRecvTransfer,
			func() (bool, error) { return h.client.ReceiveTransfer("wxid_a", "tf", "ta") },
			&wcfpb.Transfer{Wxid: "wxid_a", TfID: "tf", TaID: "ta"}},
		{"refresh moments", wcfpb.FuncRefreshPyq,
			func() (bool, error) { return h.client.RefreshMoments(0) },
			wcfpb.UI64(0)},
		{"download attachment", wcfpb.FuncDownloadAttach,
			func() (bool, error) { return h.client.DownloadAttachment(9, "th", "ex") },
			&wcfpb.AttachMsg{ID: 9, Thumb: "th", Extra: "ex"}},
		{"audio", wcfpb.FuncGetAudioMsg,
			func() (bool, error) { return h.client.AudioMsg(9, `C:\audio`) },
			&wcfpb.AudioMsg{ID: 9, Dir: `C:\audio`}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			replies.set(tc.fn, wcfpb.Status(1))
			ok, err := tc.call()
			require.NoError(t, err)
			assert.True(t, ok)

			req := replies.last(t)
			assert.Equal(t, tc.fn, req.Func)
			assert.Equal(t, tc.want, req.Msg)

			replies.set(tc.fn, wcfpb.Status(0))
			ok, err = tc.call()
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSendImageAcceptsAnyPayload(t *testing.T) {
	h := newHarness(t)
	replies := newReplies(nil)
	h.cmd.Handle(replies.handler)
	h.start(t)

	replies.set(wcfpb.FuncSendImg, wcfpb.Status(0))
	ok, err := h.client.SendImage(`C:\a.png`, "wxid_a")
	require.NoError(t, err)
	assert.True(t, ok)

	replies.set(wcfpb.FuncSendImg, nil)
	ok, err = h.client.SendImage(`C:\a.png`, "wxid_a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQueryWrappers(t *testing.T) {
	h := newHarness(t)
	replies := newReplies(map[wcfpb.Function]wcfpb.ResponsePayload{
		wcfpb.FuncGetSelfWxid: wcfpb.Str("wxid_self"),
		wcfpb.FuncGetUserInfo: &wcfpb.UserInfo{Wxid: "wxid_self", Name: "me"},
		wcfpb.FuncGetContacts: &wcfpb.RpcContacts{Contacts: []*wcfpb.RpcContact{{Wxid: "wxid_a", Name: "A"}}},
		wcfpb.FuncGetDBNames:  &wcfpb.DbNames{Names: []string{"MicroMsg.db", "MSG0.db"}},
		wcfpb.FuncGetMsgTypes: &wcfpb.MsgTypes{Types: map[int32]string{1: "text", 3: "image"}},
		wcfpb.FuncExecOCR:     &wcfpb.OcrMsg{Status: 0, Result: "hello"},
	})
	h.cmd.Handle(replies.handler)
	h.start(t)

	wxid, ok, err := h.client.SelfWxid()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "wxid_self", wxid)

	info, err := h.client.UserInfo()
	require.NoError(t, err)
	require.NotNil(t, info)
	assert.Equal(t, "me", info.Name)

	contacts, err := h.client.Contacts()
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "wxid_a", contacts[0].Wxid)

	names, err := h.client.DBNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"MicroMsg.db", "MSG0.db"}, names)

	types, err := h.client.MsgTypes()
	require.NoError(t, err)
	assert.Equal(t, map[int32]string{1: "text", 3: "image"}, types)

	ocr, err := h.client.ExecOCR(`C:\a.png`)
	require.NoError(t, err)
	require.NotNil(t, ocr)
	assert.Equal(t, "hello", ocr.Result)
	assert.Equal(t, wcfpb.Str(`C:\a.png`), replies.last(t).Msg)
}

func TestQueryWrappersLenient(t *testing.T) {
	h := newHarness(t)
	replies := newReplies(nil)
	h.cmd.Handle(replies.handler)
	h.start(t)

	replies.set(wcfpb.FuncGetSelfWxid, wcfpb.Status(1))
	_, ok, err := h.client.SelfWxid()
	require.NoError(t, err)
	assert.False(t, ok)

	info, err := h.client.UserInfo()
	require.NoError(t, err)
	assert.Nil(t, info)

	types, err := h.client.MsgTypes()
	require.NoError(t, err)
	assert.NotNil(t, types)
	assert.Empty(t, types)

	rows, err := h.client.ExecDBQuery("MicroMsg.db", "SELECT 1")
	require.NoError(t, err)
	assert.Empty(t, rows)

	ocr, err := h.client.ExecOCR("x.png")
	require.NoError(t, err)
	assert.Nil(t, ocr)
}
