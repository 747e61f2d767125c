package wcfpb

import "fmt"

// Function identifies a remote operation.
type Function int32

const (
	FuncReserved       Function = 0x00
	FuncIsLogin        Function = 0x01
	FuncGetSelfWxid    Function = 0x10
	FuncGetMsgTypes    Function = 0x11
	FuncGetContacts    Function = 0x12
	FuncGetDBNames     Function = 0x13
	FuncGetDBTables    Function = 0x14
	FuncGetUserInfo    Function = 0x15
	FuncGetAudioMsg    Function = 0x16
	FuncSendTxt        Function = 0x20
	FuncSendImg        Function = 0x21
	FuncSendFile       Function = 0x22
	FuncSendXML        Function = 0x23
	FuncSendEmotion    Function = 0x24
	FuncSendRichTxt    Function = 0x25
	FuncSendPatMsg     Function = 0x26
	FuncForwardMsg     Function = 0x27
	FuncEnableRecvTxt  Function = 0x30
	FuncDisableRecvTxt Function = 0x40
	FuncExecDBQuery    Function = 0x50
	FuncAcceptFriend   Function = 0x51
	FuncRecvTransfer   Function = 0x52
	FuncRefreshPyq     Function = 0x53
	FuncDownloadAttach Function = 0x54
	FuncGetContactInfo Function = 0x55
	FuncRevokeMsg      Function = 0x56
	FuncRefreshQrcode  Function = 0x57
	FuncDecryptImage   Function = 0x60
	FuncExecOCR        Function = 0x61
	FuncAddRoomMembers Function = 0x70
	FuncDelRoomMembers Function = 0x71
	FuncInvRoomMembers Function = 0x72
)

var functionNames = map[Function]string{
	FuncReserved:       "FUNC_RESERVED",
	FuncIsLogin:        "FUNC_IS_LOGIN",
	FuncGetSelfWxid:    "FUNC_GET_SELF_WXID",
	FuncGetMsgTypes:    "FUNC_GET_MSG_TYPES",
	FuncGetContacts:    "FUNC_GET_CONTACTS",
	FuncGetDBNames:     "FUNC_GET_DB_NAMES",
	FuncGetDBTables:    "FUNC_GET_DB_TABLES",
	FuncGetUserInfo:    "FUNC_GET_USER_INFO",
	FuncGetAudioMsg:    "FUNC_GET_AUDIO_MSG",
	FuncSendTxt:        "FUNC_SEND_TXT",
	FuncSendImg:        "FUNC_SEND_IMG",
	FuncSendFile:       "FUNC_SEND_FILE",
	FuncSendXML:        "FUNC_SEND_XML",
	FuncSendEmotion:    "FUNC_SEND_EMOTION",
	FuncSendRichTxt:    "FUNC_SEND_RICH_TXT",
	FuncSendPatMsg:     "FUNC_SEND_PAT_MSG",
	FuncForwardMsg:     "FUNC_FORWARD_MSG",
	FuncEnableRecvTxt:  "FUNC_ENABLE_RECV_TXT",
	FuncDisableRecvTxt: "FUNC_DISABLE_RECV_TXT",
	FuncExecDBQuery:    "FUNC_EXEC_DB_QUERY",
	FuncAcceptFriend:   "FUNC_ACCEPT_FRIEND",
	FuncRecvTransfer:   "FUNC_RECV_TRANSFER",
	FuncRefreshPyq:     "FUNC_REFRESH_PYQ",
	FuncDownloadAttach: "FUNC_DOWNLOAD_ATTACH",
	FuncGetContactInfo: "FUNC_GET_CONTACT_INFO",
	FuncRevokeMsg:      "FUNC_REVOKE_MSG",
	FuncRefreshQrcode:  "FUNC_REFRESH_QRCODE",
	FuncDecryptImage:   "FUNC_DECRYPT_IMAGE",
	FuncExecOCR:        "FUNC_EXEC_OCR",
	FuncAddRoomMembers: "FUNC_ADD_ROOM_MEMBERS",
	FuncDelRoomMembers: "FUNC_DEL_ROOM_MEMBERS",
	FuncInvRoomMembers: "FUNC_INV_ROOM_MEMBERS",
}

func (f Function) String() string {
	if name, ok := functionNames[f]; ok {
		return name
	}
	return fmt.Sprintf("FUNC_0x%02X", int32(f))
}
