package wcf

import (
	"fmt"

	"github.com/hsiuhsiu/wcferry-go/pkg/wcf/wcfpb"
)

// Call sends one request envelope and decodes the reply. A reply that does
// not decode is an error; a reply with an unexpected payload is not.
func (c *Client) Call(fn wcfpb.Function, payload wcfpb.RequestPayload) (*wcfpb.Response, error) {
	req := wcfpb.Request{Func: fn, Msg: payload}
	b, err := req.Marshal()
	if err != nil {
		return nil, fmt.Errorf("wcf: %s: %w", fn, err)
	}
	raw, err := c.exchange(b)
	if err != nil {
		return nil, fmt.Errorf("wcf: %s: %w", fn, err)
	}
	resp, err := wcfpb.UnmarshalResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("wcf: %s: %w", fn, err)
	}
	return resp, nil
}

// StatusOf reports whether resp carries status 1. Every other shape,
// including no payload, is false.
func StatusOf(resp *wcfpb.Response) bool {
	code, ok := resp.StatusCode()
	return ok && code == 1
}

func (c *Client) callStatus(fn wcfpb.Function, payload wcfpb.RequestPayload) (bool, error) {
	resp, err := c.Call(fn, payload)
	if err != nil {
		return false, err
	}
	return StatusOf(resp), nil
}
