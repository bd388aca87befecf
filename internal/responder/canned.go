package responder

import "context"

// CannedProvider returns the caller's rule-based draft unchanged. It is
// the default provider and needs no network or API key.
type CannedProvider struct{}

func NewCannedProvider() *CannedProvider {
	return &CannedProvider{}
}

func (p *CannedProvider) Reply(_ context.Context, req Request) (*Response, error) {
	if req.Draft == "" {
		return nil, &ErrEmptyReply{}
	}
	return &Response{
		Text:       req.Draft,
		Model:      p.ModelID(),
		StopReason: "end",
	}, nil
}

func (p *CannedProvider) ModelID() string {
	return "canned"
}
