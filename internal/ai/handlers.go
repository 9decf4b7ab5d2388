package ai

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHandler(service *Service, logger zerolog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r gin.IRouter) {
	api := r.Group("/api")
	api.POST("/generate-sentence", h.GenerateSentenceHandler)
	api.POST("/ai-word", h.AiWordHandler)
	api.POST("/tts", h.TtsHandler)
	api.POST("/generate-character-image", h.CharacterImageHandler)
	api.POST("/judge", h.JudgeHandler)
}

type generateSentenceRequest struct {
	Word1 string `json:"word1"`
	Quote string `json:"quote"`
}

func (h *Handler) GenerateSentenceHandler(ctx *gin.Context) {
	var req generateSentenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Word1 == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "단어를 입력해주세요."})
		return
	}

	sentence, err := h.service.GenerateSentence(ctx.Request.Context(), req.Word1, req.Quote)
	if err != nil {
		h.logger.Error().Err(err).Str("word", req.Word1).Msg("generate-sentence")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "문장 생성 실패"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"sentence": sentence})
}

func (h *Handler) AiWordHandler(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"word": h.service.RandomWord()})
}

type ttsRequest struct {
	Text string `json:"text"`
}

func (h *Handler) TtsHandler(ctx *gin.Context) {
	var req ttsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Text == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "텍스트가 필요합니다."})
		return
	}

	data, mimeType, err := h.service.Synthesize(ctx.Request.Context(), req.Text)
	if err != nil {
		h.logger.Error().Err(err).Msg("tts")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "TTS 생성 실패"})
		return
	}
	ctx.Data(http.StatusOK, mimeType, data)
}

type characterImageRequest struct {
	Name        string `json:"name"`
	Symbol      string `json:"emoji"`
	Description string `json:"description"`
}

func (h *Handler) CharacterImageHandler(ctx *gin.Context) {
	var req characterImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Description == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "캐릭터 이름과 설명이 필요합니다."})
		return
	}

	data, mimeType, err := h.service.GenerateCharacterImage(ctx.Request.Context(), req.Name, req.Symbol, req.Description)
	if err != nil {
		h.logger.Error().Err(err).Str("name", req.Name).Msg("generate-character-image")
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "이미지 생성 실패"})
		return
	}

	ctx.Header("Cache-Control", "public, max-age=86400")
	ctx.Header("Content-Length", strconv.Itoa(len(data)))
	ctx.Data(http.StatusOK, mimeType, data)
}

// JudgeHandler compares the two uploaded performances. It always answers with
// a judgment: judge failures degrade to the neutral fallback inside the
// service, never to a missing result.
func (h *Handler) JudgeHandler(ctx *gin.Context) {
	sentence := ctx.PostForm("sentence")
	audio1, mime1, err1 := formAudio(ctx, "audio1")
	audio2, mime2, err2 := formAudio(ctx, "audio2")

	if err1 != nil || err2 != nil || sentence == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "두 음성 파일과 문장이 필요합니다."})
		return
	}

	judgment := h.service.JudgeVoices(ctx.Request.Context(), audio1, mime1, audio2, mime2, sentence)
	ctx.JSON(http.StatusOK, judgment)
}

func formAudio(ctx *gin.Context, field string) ([]byte, string, error) {
	header, err := ctx.FormFile(field)
	if err != nil {
		return nil, "", err
	}
	return readUpload(header)
}

func readUpload(header *multipart.FileHeader) ([]byte, string, error) {
	f, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}
	return data, header.Header.Get("Content-Type"), nil
}
