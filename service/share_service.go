package service

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"flip-agent/config"
	"flip-agent/domain"
	"flip-agent/repository"
)

const shareKeyPrefix = "share:"

// compactDeal is the abbreviated wire form used for share links. Keys stay
// short so the base64 payload fits comfortably in a URL.
type compactDeal struct {
	Dt  domain.DealType           `json:"dt,omitempty"`
	Pp  float64                   `json:"pp"`
	Sp  float64                   `json:"sp"`
	Dld float64                   `json:"dld"`
	Bf  float64                   `json:"bf"`
	Bfv float64                   `json:"bfv"`
	Sf  float64                   `json:"sf"`
	Sfv float64                   `json:"sfv"`
	Rb  float64                   `json:"rb"`
	Rp  float64                   `json:"rp"`
	Sc  float64                   `json:"sc"`
	Dw  float64                   `json:"dw"`
	Tf  float64                   `json:"tf"`
	Mr  int                       `json:"mr"`
	Me  int                       `json:"me"`
	Ip  float64                   `json:"ip"`
	Op  float64                   `json:"op"`
	Ls  domain.LossSharingMode    `json:"ls,omitempty"`
	Pa  *float64                  `json:"pa,omitempty"`
	Ps  []domain.ScheduledPayment `json:"ps,omitempty"`
}

// ShareService encodes deal inputs into compact shareable strings and
// resolves short share codes through the key/value store.
type ShareService struct {
	cache repository.CacheRepository
}

func NewShareService(cache repository.CacheRepository) *ShareService {
	return &ShareService{cache: cache}
}

// Encode packs the input into a base64url string suitable for a query
// parameter.
func (s *ShareService) Encode(input domain.DealInput) string {
	c := compactDeal{
		Dt:  input.DealType,
		Pp:  input.PurchasePrice,
		Sp:  input.SalePrice,
		Dld: input.DldPct,
		Bf:  input.BuyerFeePct,
		Bfv: input.BuyerFeeVatPct,
		Sf:  input.SellerFeePct,
		Sfv: input.SellerFeeVatPct,
		Rb:  input.RenovationBudget,
		Rp:  input.ReservePct,
		Sc:  input.ServiceChargeAnnual,
		Dw:  input.DewaMonthly,
		Tf:  input.TrusteeFee,
		Mr:  input.MonthsRepair,
		Me:  input.MonthsExposure,
		Ip:  input.InvestorSharePct,
		Op:  input.OperatorSharePct,
		Ls:  input.LossSharing,
	}
	if input.Offplan != nil {
		paid := input.Offplan.PaidAmount
		c.Pa = &paid
		c.Ps = input.Offplan.PaymentSchedule
	}

	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode unpacks an encoded share string. Fields absent from the payload
// fall back to the embedded defaults.
func (s *ShareService) Decode(encoded string) (domain.DealInput, error) {
	data, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return domain.DealInput{}, fmt.Errorf("decoding share payload: %w", err)
	}

	defaults, err := config.DefaultDeal()
	if err != nil {
		return domain.DealInput{}, err
	}
	c := compactDeal{
		Dt:  defaults.DealType,
		Dld: defaults.DldPct,
		Bf:  defaults.BuyerFeePct,
		Bfv: defaults.BuyerFeeVatPct,
		Sf:  defaults.SellerFeePct,
		Sfv: defaults.SellerFeeVatPct,
		Rp:  defaults.ReservePct,
		Sc:  defaults.ServiceChargeAnnual,
		Dw:  defaults.DewaMonthly,
		Tf:  defaults.TrusteeFee,
		Mr:  defaults.MonthsRepair,
		Me:  defaults.MonthsExposure,
		Ip:  defaults.InvestorSharePct,
		Op:  defaults.OperatorSharePct,
		Ls:  defaults.LossSharing,
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return domain.DealInput{}, fmt.Errorf("parsing share payload: %w", err)
	}

	input := domain.DealInput{
		DealType:            c.Dt,
		PurchasePrice:       c.Pp,
		SalePrice:           c.Sp,
		DldPct:              c.Dld,
		BuyerFeePct:         c.Bf,
		BuyerFeeVatPct:      c.Bfv,
		SellerFeePct:        c.Sf,
		SellerFeeVatPct:     c.Sfv,
		RenovationBudget:    c.Rb,
		ReservePct:          c.Rp,
		ServiceChargeAnnual: c.Sc,
		DewaMonthly:         c.Dw,
		TrusteeFee:          c.Tf,
		MonthsRepair:        c.Mr,
		MonthsExposure:      c.Me,
		InvestorSharePct:    c.Ip,
		OperatorSharePct:    c.Op,
		LossSharing:         c.Ls,
	}
	if c.Pa != nil || len(c.Ps) > 0 {
		input.DealType = domain.DealOffplan
		terms := &domain.OffplanTerms{PaymentSchedule: c.Ps}
		if c.Pa != nil {
			terms.PaidAmount = *c.Pa
		}
		input.Offplan = terms
	}
	return input, nil
}

// CreateCode stores the encoded input under a short random code.
func (s *ShareService) CreateCode(input domain.DealInput) (string, error) {
	if s.cache == nil {
		return "", errors.New("share storage is not configured")
	}
	code := strings.Split(uuid.NewString(), "-")[0]
	if err := s.cache.Set(shareKeyPrefix+code, s.Encode(input)); err != nil {
		return "", fmt.Errorf("storing share code: %w", err)
	}
	return code, nil
}

// Resolve looks a share code up and decodes the stored input.
func (s *ShareService) Resolve(code string) (domain.DealInput, error) {
	if s.cache == nil {
		return domain.DealInput{}, errors.New("share storage is not configured")
	}
	encoded, ok := s.cache.Get(shareKeyPrefix + code)
	if !ok {
		return domain.DealInput{}, fmt.Errorf("unknown share code %q", code)
	}
	return s.Decode(encoded)
}

// ListCodes returns all live share codes.
func (s *ShareService) ListCodes() ([]string, error) {
	if s.cache == nil {
		return nil, nil
	}
	keys, err := s.cache.List(shareKeyPrefix)
	if err != nil {
		return nil, err
	}
	codes := make([]string, 0, len(keys))
	for _, k := range keys {
		codes = append(codes, strings.TrimPrefix(k, shareKeyPrefix))
	}
	return codes, nil
}

// DeleteCode removes a share code.
func (s *ShareService) DeleteCode(code string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(shareKeyPrefix + code)
}
