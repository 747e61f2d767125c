package wcf

import "github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"

// Room membership changes take wxids as one comma separated string.

func (c *Client) AddChatRoomMembers(roomID, wxids string) (bool, error) {
	return c.callStatus(wcfpb.FuncAddRoomMembers, &wcfpb.MemberMgmt{RoomID: roomID, Wxids: wxids})
}

func (c *Client) InviteChatRoomMembers(roomID, wxids string) (bool, error) {
	return c.callStatus(wcfpb.FuncInvRoomMembers, &wcfpb.MemberMgmt{RoomID: roomID, Wxids: wxids})
}

func (c *Client) DelChatRoomMembers(roomID, wxids string) (bool, error) {
	return c.callStatus(wcfpb.FuncDelRoomMembers, &wcfpb.MemberMgmt{RoomID: roomID, Wxids: wxids})
}
