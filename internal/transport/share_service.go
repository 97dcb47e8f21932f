package transport

import (
	"context"

	"google.golang.org/grpc"
)

const shareServiceName = "tokenpool.v1.ShareService"

type (
	// SubmitShareRequest is one share as sent by the protocol layer.
	SubmitShareRequest struct {
		Nonce           string `json:"nonce"`
		ExtraNonce      string `json:"extra_nonce"`
		MinerAddress    string `json:"miner_address"`
		ChallengeNumber string `json:"challenge_number"`
		Digest          string `json:"digest"`
		Difficulty      uint64 `json:"difficulty"`
		MinerClass      string `json:"miner_class"`
		ProofBlob       string `json:"proof_blob"`
		ProofSeed       string `json:"proof_seed"`
		ProofHash       string `json:"proof_hash"`
		ClaimedTarget   string `json:"claimed_target"`
	}
	SubmitShareResponse struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		Reason   string `json:"reason,omitempty"`
		Credited bool   `json:"credited"`
	}
	GetChallengeNumberRequest  struct{}
	GetChallengeNumberResponse struct {
		ChallengeNumber string `json:"challenge_number"`
	}
	GetMinimumShareTargetRequest struct {
		MinerClass string `json:"miner_class"`
	}
	GetMinimumShareTargetResponse struct {
		Target string `json:"target"`
	}
	GetPoolSuspendedRequest  struct{}
	GetPoolSuspendedResponse struct {
		Suspended bool `json:"suspended"`
	}
)

// ShareServiceServer is the server API of tokenpool.v1.ShareService.
type ShareServiceServer interface {
	SubmitShare(context.Context, *SubmitShareRequest) (*SubmitShareResponse, error)
	GetChallengeNumber(context.Context, *GetChallengeNumberRequest) (*GetChallengeNumberResponse, error)
	GetMinimumShareTarget(context.Context, *GetMinimumShareTargetRequest) (*GetMinimumShareTargetResponse, error)
	GetPoolSuspended(context.Context, *GetPoolSuspendedRequest) (*GetPoolSuspendedResponse, error)
}

// RegisterShareServiceServer registers srv on s.
func RegisterShareServiceServer(s grpc.ServiceRegistrar, srv ShareServiceServer) {
	s.RegisterService(&shareServiceDesc, srv)
}

var shareServiceDesc = grpc.ServiceDesc{
	ServiceName: shareServiceName,
	HandlerType: (*ShareServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SubmitShare", Handler: unaryHandler("SubmitShare", ShareServiceServer.SubmitShare)},
		{MethodName: "GetChallengeNumber", Handler: unaryHandler("GetChallengeNumber", ShareServiceServer.GetChallengeNumber)},
		{MethodName: "GetMinimumShareTarget", Handler: unaryHandler("GetMinimumShareTarget", ShareServiceServer.GetMinimumShareTarget)},
		{MethodName: "GetPoolSuspended", Handler: unaryHandler("GetPoolSuspended", ShareServiceServer.GetPoolSuspended)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tokenpool/v1/share_service.json",
}

// unaryHandler adapts a typed server method to grpc's method handler signature.
func unaryHandler[Req, Resp any](method string, call func(ShareServiceServer, context.Context, *Req) (*Resp, error)) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	fullMethod := "/" + shareServiceName + "/" + method
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ShareServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(ShareServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ShareServiceClient calls tokenpool.v1.ShareService over the JSON codec.
type ShareServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewShareServiceClient wraps cc.
func NewShareServiceClient(cc grpc.ClientConnInterface) *ShareServiceClient {
	return &ShareServiceClient{cc: cc}
}

func (c *ShareServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+shareServiceName+"/"+method, in, out, opts...)
}

// SubmitShare submits one share.
func (c *ShareServiceClient) SubmitShare(ctx context.Context, in *SubmitShareRequest, opts ...grpc.CallOption) (*SubmitShareResponse, error) {
	out := new(SubmitShareResponse)
	if err := c.invoke(ctx, "SubmitShare", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// GetChallengeNumber returns the current challenge.
func (c *ShareServiceClient) GetChallengeNumber(ctx context.Context, in *GetChallengeNumberRequest, opts ...grpc.CallOption) (*GetChallengeNumberResponse, error) {
	out := new(GetChallengeNumberResponse)
	if err := c.invoke(ctx, "GetChallengeNumber", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// GetMinimumShareTarget returns the easiest target accepted for a miner class.
func (c *ShareServiceClient) GetMinimumShareTarget(ctx context.Context, in *GetMinimumShareTargetRequest, opts ...grpc.CallOption) (*GetMinimumShareTargetResponse, error) {
	out := new(GetMinimumShareTargetResponse)
	if err := c.invoke(ctx, "GetMinimumShareTarget", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPoolSuspended reports whether share intake is suspended.
func (c *ShareServiceClient) GetPoolSuspended(ctx context.Context, in *GetPoolSuspendedRequest, opts ...grpc.CallOption) (*GetPoolSuspendedResponse, error) {
	out := new(GetPoolSuspendedResponse)
	if err := c.invoke(ctx, "GetPoolSuspended", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
