package wcf

import "github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"

// IsLogin reports whether the WeChat client is logged in.
func (c *Client) IsLogin() (bool, error) {
	return c.callStatus(wcfpb.FuncIsLogin, nil)
}

// SelfWxid returns the logged-in account's wxid. ok is false when the SDK
// answered with something other than a string.
func (c *Client) SelfWxid() (wxid string, ok bool, err error) {
	resp, err := c.Call(wcfpb.FuncGetSelfWxid, nil)
	if err != nil {
		return "", false, err
	}
	wxid, ok = resp.Str()
	return wxid, ok, nil
}

// UserInfo returns the logged-in account's profile, or nil.
func (c *Client) UserInfo() (*wcfpb.UserInfo, error) {
	resp, err := c.Call(wcfpb.FuncGetUserInfo, nil)
	if err != nil {
		return nil, err
	}
	return resp.UserInfo(), nil
}

// Contacts returns the contact list as the SDK caches it, or nil.
func (c *Client) Contacts() ([]*wcfpb.RpcContact, error) {
	resp, err := c.Call(wcfpb.FuncGetContacts, nil)
	if err != nil {
		return nil, err
	}
	return resp.Contacts(), nil
}

// MsgTypes returns the message type names keyed by WxMsg.Type. The map is
// empty, never nil, when the SDK sent none.
func (c *Client) MsgTypes() (map[int32]string, error) {
	resp, err := c.Call(wcfpb.FuncGetMsgTypes, nil)
	if err != nil {
		return nil, err
	}
	types := resp.MsgTypes()
	if types == nil {
		types = map[int32]string{}
	}
	return types, nil
}
