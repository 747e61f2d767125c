package wcf

import "github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"

// SendText sends msg to receiver, a wxid or a room id. In a room, aters is a
// comma separated list of wxids to mention ("notify@all" for everyone) and
// msg needs one "@" per mention.
func (c *Client) SendText(msg, receiver, aters string) (bool, error) {
	return c.callStatus(wcfpb.FuncSendTxt, &wcfpb.TextMsg{Msg: msg, Receiver: receiver, Aters: aters})
}

// SendImage sends the image at path. The SDK's reply carries no usable status
// for images, so any reply counts as success.
func (c *Client) SendImage(path, receiver string) (bool, error) {
	resp, err := c.Call(wcfpb.FuncSendImg, &wcfpb.PathMsg{Path: path, Receiver: receiver})
	if err != nil {
		return false, err
	}
	return resp.HasPayload(), nil
}

func (c *Client) SendFile(path, receiver string) (bool, error) {
	return c.callStatus(wcfpb.FuncSendFile, &wcfpb.PathMsg{Path: path, Receiver: receiver})
}

// SendXML sends a raw XML card of the given type. path is an optional
// thumbnail.
func (c *Client) SendXML(xml, path, receiver string, xmlType int32) (bool, error) {
	return c.callStatus(wcfpb.FuncSendXML, &wcfpb.XmlMsg{Content: xml, Path: path, Receiver: receiver, Type: xmlType})
}

func (c *Client) SendEmotion(path, receiver string) (bool, error) {
	return c.callStatus(wcfpb.FuncSendEmotion, &wcfpb.PathMsg{Path: path, Receiver: receiver})
}

// SendRichText sends a link card.
func (c *Client) SendRichText(rt *wcfpb.RichText) (bool, error) {
	if rt == nil {
		rt = &wcfpb.RichText{}
	}
	return c.callStatus(wcfpb.FuncSendRichTxt, rt)
}

// SendPat pats wxid in a room.
func (c *Client) SendPat(roomID, wxid string) (bool, error) {
	return c.callStatus(wcfpb.FuncSendPatMsg, &wcfpb.PatMsg{RoomID: roomID, Wxid: wxid})
}

// ForwardMsg forwards the message with the given id to receiver.
func (c *Client) ForwardMsg(id uint64, receiver string) (bool, error) {
	return c.callStatus(wcfpb.FuncForwardMsg, &wcfpb.ForwardMsg{ID: id, Receiver: receiver})
}

// AcceptNewFriend accepts a friend request using the v3/v4 tickets from the
// request message.
func (c *Client) AcceptNewFriend(v3, v4 string, scene int32) (bool, error) {
	return c.callStatus(wcfpb.FuncAcceptFriend, &wcfpb.Verification{V3: v3, V4: v4, Scene: scene})
}

// ReceiveTransfer accepts a money transfer.
func (c *Client) ReceiveTransfer(wxid, transferID, transactionID string) (bool, error) {
	return c.callStatus(wcfpb.FuncRecvTransfer, &wcfpb.Transfer{Wxid: wxid, TfID: transferID, TaID: transactionID})
}

// RefreshMoments refreshes the moments timeline starting at id (0 for the
// newest page).
func (c *Client) RefreshMoments(id uint64) (bool, error) {
	return c.callStatus(wcfpb.FuncRefreshPyq, wcfpb.UI64(id))
}

// DownloadAttachment asks the SDK to fetch the attachment of message id. thumb
// and extra come from the WxMsg.
func (c *Client) DownloadAttachment(id uint64, thumb, extra string) (bool, error) {
	return c.callStatus(wcfpb.FuncDownloadAttach, &wcfpb.AttachMsg{ID: id, Thumb: thumb, Extra: extra})
}

// DecryptImage decrypts a downloaded .dat image from src into dst.
func (c *Client) DecryptImage(src, dst string) (bool, error) {
	return c.callStatus(wcfpb.FuncDecryptImage, &wcfpb.DecPath{Src: src, Dst: dst})
}

// AudioMsg saves the voice message id as a file under dir.
func (c *Client) AudioMsg(id uint64, dir string) (bool, error) {
	return c.callStatus(wcfpb.FuncGetAudioMsg, &wcfpb.AudioMsg{ID: id, Dir: dir})
}

// ExecOCR runs text recognition on the image at path. A nil result means the
// SDK did not answer with an OCR payload.
func (c *Client) ExecOCR(path string) (*wcfpb.OcrMsg, error) {
	resp, err := c.Call(wcfpb.FuncExecOCR, wcfpb.Str(path))
	if err != nil {
		return nil, err
	}
	return resp.OCR(), nil
}
