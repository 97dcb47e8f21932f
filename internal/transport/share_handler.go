package transport

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/model"
	"github.com/goodnatureofminers/tokenpool-backend/internal/pool/service/gatekeeper"
)

// ShareHandler serves ShareService on top of the share intake.
type ShareHandler struct {
	logger *zap.Logger
	intake Intake
	epochs EpochReader
}

// NewShareHandler builds a ShareHandler.
func NewShareHandler(intake Intake, epochs EpochReader, logger *zap.Logger) *ShareHandler {
	return &ShareHandler{
		logger: logger.Named("share_handler"),
		intake: intake,
		epochs: epochs,
	}
}

// SubmitShare validates and credits one share. Rejections are answered in the response; only
// transport-level failures become gRPC errors.
func (h *ShareHandler) SubmitShare(ctx context.Context, req *SubmitShareRequest) (*SubmitShareResponse, error) {
	share := gatekeeper.ShareSubmission{
		Nonce:           req.Nonce,
		ExtraNonce:      req.ExtraNonce,
		MinerAddress:    req.MinerAddress,
		ChallengeNumber: req.ChallengeNumber,
		Digest:          req.Digest,
		Difficulty:      req.Difficulty,
		ProofBlob:       req.ProofBlob,
		ProofSeed:       req.ProofSeed,
		ProofHash:       req.ProofHash,
		ClaimedTarget:   req.ClaimedTarget,
	}
	if strings.TrimSpace(req.MinerClass) != "" {
		class, err := model.ParseMinerClass(req.MinerClass)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		share.MinerClass = class
	}

	res, err := h.intake.Submit(ctx, share)
	if err != nil {
		switch {
		case errors.Is(err, gatekeeper.ErrIntakeClosed):
			return nil, status.Error(codes.Unavailable, err.Error())
		case errors.Is(err, context.DeadlineExceeded):
			return nil, status.Error(codes.DeadlineExceeded, err.Error())
		case errors.Is(err, context.Canceled):
			return nil, status.Error(codes.Canceled, err.Error())
		default:
			h.logger.Error("submit share failed", zap.String("miner", req.MinerAddress), zap.Error(err))
			return nil, status.Error(codes.Internal, "submit share failed")
		}
	}

	return &SubmitShareResponse{
		Success:  res.Success,
		Message:  res.Message,
		Reason:   string(res.Reason),
		Credited: res.Credited,
	}, nil
}

// GetChallengeNumber returns the challenge miners should work on.
func (h *ShareHandler) GetChallengeNumber(context.Context, *GetChallengeNumberRequest) (*GetChallengeNumberResponse, error) {
	challenge := h.epochs.ChallengeNumber()
	if challenge == "" {
		return nil, status.Error(codes.Unavailable, "no current challenge")
	}
	return &GetChallengeNumberResponse{ChallengeNumber: challenge}, nil
}

// GetMinimumShareTarget returns the easiest accepted target for a miner class as hex.
func (h *ShareHandler) GetMinimumShareTarget(_ context.Context, req *GetMinimumShareTargetRequest) (*GetMinimumShareTargetResponse, error) {
	class, err := model.ParseMinerClass(req.MinerClass)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &GetMinimumShareTargetResponse{Target: h.epochs.MinimumShareTarget(class)}, nil
}

// GetPoolSuspended reports whether shares are currently refused.
func (h *ShareHandler) GetPoolSuspended(context.Context, *GetPoolSuspendedRequest) (*GetPoolSuspendedResponse, error) {
	return &GetPoolSuspendedResponse{Suspended: h.epochs.PoolSuspended()}, nil
}
