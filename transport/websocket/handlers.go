package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dodiwadhwa-maker/q-block-master/internal/apperror"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := that.decodePayload(msg)
	if err != nil {
		return err
	}

	playerID := ""
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.uGame.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)

		return that.sendErrorResponse(bufrw, msg.Action, "failed to create a new player")
	}

	payloadResp := ResponsePayload{
		Player: player,
	}

	if player.GameID != "" {
		game, err := that.uGame.GetOrCreateGame(ctx, player.ID)
		if err != nil {
			log.Error("failed to get active game", "error", err)

			return that.sendErrorResponse(bufrw, msg.Action, "failed to get the active game")
		}
		payloadResp.Game = game
	}

	if err = that.sendMessage(bufrw, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "player_id", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleNewGame")

	payloadReq, err := that.decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	game, err := that.uGame.GetOrCreateGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to get or create game", "error", err)

		return that.sendErrorResponse(bufrw, msg.Action, "failed to start a game")
	}

	payloadResp := ResponsePayload{
		Player: payloadReq.Player,
		Game:   game,
	}

	return that.sendMessage(bufrw, msg.Action, payloadResp)
}

func (that *Server) handlePlace(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handlePlace")

	payloadReq, err := that.decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil || payloadReq.Slot == nil {
		log.Error("Player or slot is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player and slot are required")
	}

	game, lines, err := that.uGame.PlaceShape(ctx, payloadReq.Player.ID, *payloadReq.Slot, payloadReq.X, payloadReq.Y)
	if err != nil {
		if userMsg, ok := userFacing(err); ok {
			return that.sendErrorResponse(bufrw, msg.Action, userMsg)
		}

		log.Error("failed to place shape", "error", err)

		return that.sendErrorResponse(bufrw, msg.Action, "failed to place the shape")
	}

	payloadResp := ResponsePayload{
		Player:       payloadReq.Player,
		Game:         game,
		LinesCleared: &lines,
	}

	return that.sendMessage(bufrw, msg.Action, payloadResp)
}

func (that *Server) handleRotate(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleRotate")

	payloadReq, err := that.decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil || payloadReq.Slot == nil {
		log.Error("Player or slot is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player and slot are required")
	}

	game, err := that.uGame.RotateShape(ctx, payloadReq.Player.ID, *payloadReq.Slot)
	if err != nil {
		if userMsg, ok := userFacing(err); ok {
			return that.sendErrorResponse(bufrw, msg.Action, userMsg)
		}

		log.Error("failed to rotate shape", "error", err)

		return that.sendErrorResponse(bufrw, msg.Action, "failed to rotate the shape")
	}

	payloadResp := ResponsePayload{
		Player: payloadReq.Player,
		Game:   game,
	}

	return that.sendMessage(bufrw, msg.Action, payloadResp)
}

func (that *Server) handleHold(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleHold")

	payloadReq, err := that.decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil || payloadReq.Slot == nil {
		log.Error("Player or slot is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player and slot are required")
	}

	game, err := that.uGame.SwapHold(ctx, payloadReq.Player.ID, *payloadReq.Slot)
	if err != nil {
		if userMsg, ok := userFacing(err); ok {
			return that.sendErrorResponse(bufrw, msg.Action, userMsg)
		}

		log.Error("failed to swap hold", "error", err)

		return that.sendErrorResponse(bufrw, msg.Action, "failed to hold the shape")
	}

	payloadResp := ResponsePayload{
		Player: payloadReq.Player,
		Game:   game,
	}

	return that.sendMessage(bufrw, msg.Action, payloadResp)
}

func (that *Server) handleHint(ctx context.Context, msg *Message, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleHint")

	payloadReq, err := that.decodePayload(msg)
	if err != nil {
		return err
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(bufrw, msg.Action, "Player is required")
	}

	game, err := that.uGame.GetOrCreateGame(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to get game", "error", err)

		return that.sendErrorResponse(bufrw, msg.Action, "failed to get the game")
	}

	payloadResp := ResponsePayload{
		Player: payloadReq.Player,
		Hint:   that.hints.Suggest(game.Grid, game.Pool),
	}

	return that.sendMessage(bufrw, msg.Action, payloadResp)
}

func (that *Server) decodePayload(msg *Message) (*RequestPayload, error) {
	var payloadReq RequestPayload

	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
		}
	}

	return &payloadReq, nil
}

func (that *Server) sendErrorResponse(bufrw *bufio.ReadWriter, action, message string) error {
	return that.sendMessage(bufrw, action, ResponsePayload{Error: message})
}

// userFacing maps domain rejections to messages the client can show
// directly; anything else is an internal failure.
func userFacing(err error) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrInvalidPlacement):
		return "the shape does not fit there", true
	case errors.Is(err, apperror.ErrInsufficientKeys):
		return "not enough keys to rotate", true
	case errors.Is(err, apperror.ErrInvalidSlot):
		return "that slot does not exist", true
	case errors.Is(err, apperror.ErrHoldEmpty):
		return "the hold slot is empty", true
	case errors.Is(err, apperror.ErrGameFinished):
		return "the game is already over", true
	default:
		return "", false
	}
}
