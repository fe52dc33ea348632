package smartstoredomain

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrPhraseMissing         = errors.New("smartstore: mainPhrase ausente")
	ErrPhrasePatternMismatch = errors.New("smartstore: mainPhrase fora do padrão de compradores")
	ErrPhraseNotNumeric      = errors.New("smartstore: contagem de compradores inválida")
)

// buyerCountPattern captura o número em frases como "1,234명 구매"
var buyerCountPattern = regexp.MustCompile(`([\d,]+)명`)

// MarketingMessage é o corpo retornado por /i/v1/marketing-message/{productId}
type MarketingMessage struct {
	MainPhrase *string `json:"mainPhrase"`
}

// ParseCount extrai a quantidade de compradores do mainPhrase.
// Qualquer falha devolve zero junto com o motivo.
func ParseCount(msg MarketingMessage) (int, error) {
	if msg.MainPhrase == nil || *msg.MainPhrase == "" {
		return 0, ErrPhraseMissing
	}

	match := buyerCountPattern.FindStringSubmatch(*msg.MainPhrase)
	if len(match) < 2 {
		return 0, ErrPhrasePatternMismatch
	}

	digits := strings.ReplaceAll(match[1], ",", "")
	if digits == "" {
		return 0, ErrPhrasePatternMismatch
	}

	count, err := strconv.Atoi(digits)
	if err != nil {
		return 0, ErrPhraseNotNumeric
	}

	return count, nil
}
