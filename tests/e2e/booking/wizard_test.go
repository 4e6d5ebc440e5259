//go:build e2e

package booking_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	resdto "marketplace-api/internal/handler/dto/response"
	"marketplace-api/tests/common/authtest"
	"marketplace-api/tests/common/dbtest"
	"marketplace-api/tests/common/httptest"
	"marketplace-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const wizardURL = "/api/bookings/wizard"

type wizardSuite struct {
	e2e.SharedSuite

	companyID  uuid.UUID
	serviceID  uuid.UUID
	cookies    []*http.Cookie
	futureDate string
}

func TestWizardSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(wizardSuite))
}

func (s *wizardSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.companyID = dbtest.CreateTestCompany(s.T(), s.DB, "Sparkle Cleaning Co")
	providerID := dbtest.CreateTestProvider(s.T(), s.DB, s.companyID, "Alex Rivera")
	categoryID := dbtest.CreateTestCategory(s.T(), s.DB, s.companyID, "Cleaning")
	s.serviceID = dbtest.CreateTestService(s.T(), s.DB, s.companyID, providerID, categoryID, "Deep Cleaning", 10000, 60)
	dbtest.CreateTestAddon(s.T(), s.DB, s.serviceID, "Window Cleaning", 1500, true)

	s.cookies = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "customer@example.com", "customer", nil)
	s.futureDate = time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func (s *wizardSuite) startWizard() resdto.WizardResponse {
	w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, wizardURL,
		map[string]any{"serviceId": s.serviceID.String()}, s.cookies)

	var resp resdto.WizardResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
	return resp
}

func (s *wizardSuite) fillDetails(token uuid.UUID) resdto.WizardResponse {
	w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPut,
		wizardURL+"/"+token.String()+"/details",
		map[string]any{"scheduledDate": s.futureDate, "scheduledTime": "10:00"}, s.cookies)

	var resp resdto.WizardResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	return resp
}

func (s *wizardSuite) next(token uuid.UUID, body any) resdto.WizardResponse {
	w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost,
		wizardURL+"/"+token.String()+"/next", body, s.cookies)

	var resp resdto.WizardResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	return resp
}

func (s *wizardSuite) TestCashOnDeliveryFlow() {
	s.Run("books a service end to end with cash on delivery", func() {
		start := s.startWizard()
		s.Equal(1, start.Step)
		// profile data was complete, so contact fields arrive prefilled
		s.True(start.Customer.Prefilled)
		s.Equal(int64(11500), start.TotalCents)

		details := s.fillDetails(start.Token)
		// provider works 09:00-17:00 with 60 minute sessions
		wantSlots := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
		if diff := cmp.Diff(wantSlots, details.AvailableSlots); diff != "" {
			s.Failf("slot mismatch", "(-want +got):\n%s", diff)
		}

		step2 := s.next(start.Token, nil)
		s.Equal(2, step2.Step)

		done := s.next(start.Token, map[string]any{"paymentType": "cash_on_delivery"})
		s.Equal(5, done.Step)
		s.True(done.Completed)
		require.NotNil(s.T(), done.BookingID)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet,
			"/api/bookings/"+done.BookingID.String(), nil, s.cookies)
		var bookingResp resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &bookingResp)
		s.Equal("pending", bookingResp.Status)
		s.Equal("cash_on_delivery", bookingResp.PaymentType)
		s.Equal(int64(11500), bookingResp.TotalCents)
	})
}

func (s *wizardSuite) TestCardFlow() {
	s.Run("pays by card and confirms the booking", func() {
		start := s.startWizard()
		s.fillDetails(start.Token)

		step2 := s.next(start.Token, nil)
		s.Equal(2, step2.Step)

		step3 := s.next(start.Token, map[string]any{"paymentType": "instant"})
		s.Equal(3, step3.Step)
		require.NotNil(s.T(), step3.BookingID)

		step4 := s.next(start.Token, nil)
		s.Equal(4, step4.Step)

		done := s.next(start.Token, map[string]any{
			"cardNumber":     "4242424242424242",
			"cardholderName": "Jordan Smith",
			"expiryDate":     "12/28",
			"cvv":            "123",
		})
		s.Equal(5, done.Step)

		var method, status string
		err := s.DB.QueryRow(context.Background(),
			"SELECT method, status FROM payments WHERE booking_id = $1", *step3.BookingID).
			Scan(&method, &status)
		require.NoError(s.T(), err)
		s.Equal("card", method)
		s.Equal("paid", status)

		var bookingStatus string
		err = s.DB.QueryRow(context.Background(),
			"SELECT status FROM bookings WHERE id = $1", *step3.BookingID).Scan(&bookingStatus)
		require.NoError(s.T(), err)
		s.Equal("confirmed", bookingStatus)
	})
}

func (s *wizardSuite) TestGuardsAndNavigation() {
	s.Run("blocks step one until the schedule is filled in", func() {
		start := s.startWizard()

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost,
			wizardURL+"/"+start.Token.String()+"/next", nil, s.cookies)
		httptest.AssertValidationResponse(s.T(), w, "scheduledDate", "scheduledTime")
	})

	s.Run("goes back from the payment type step", func() {
		start := s.startWizard()
		s.fillDetails(start.Token)
		s.next(start.Token, nil)

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost,
			wizardURL+"/"+start.Token.String()+"/back", nil, s.cookies)
		var resp resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(1, resp.Step)
	})

	s.Run("hides sessions from other users", func() {
		start := s.startWizard()

		otherCookies := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "other@example.com", "customer", nil)
		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet,
			wizardURL+"/"+start.Token.String(), nil, otherCookies)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "another user")
	})

	s.Run("returns 404 once the session is gone", func() {
		start := s.startWizard()

		require.NoError(s.T(), s.Redis.FlushAll(context.Background()).Err())

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet,
			wizardURL+"/"+start.Token.String(), nil, s.cookies)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not found or expired")
	})

	s.Run("keeps the stored booking aligned with later edits", func() {
		optionalID := dbtest.CreateTestAddon(s.T(), s.DB, s.serviceID, "Fridge Detail", 2000, false)

		start := s.startWizard()
		s.fillDetails(start.Token)
		s.next(start.Token, nil)

		step3 := s.next(start.Token, map[string]any{"paymentType": "instant"})
		require.NotNil(s.T(), step3.BookingID)

		for i := 0; i < 2; i++ {
			w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost,
				wizardURL+"/"+start.Token.String()+"/back", nil, s.cookies)
			var resp resdto.WizardResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		}

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPut,
			wizardURL+"/"+start.Token.String()+"/details",
			map[string]any{"scheduledTime": "11:00", "selectedAddons": []string{optionalID.String()}}, s.cookies)
		var details resdto.WizardResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &details)
		s.Equal(int64(13500), details.TotalCents)

		s.next(start.Token, nil)
		done := s.next(start.Token, map[string]any{"paymentType": "cash_on_delivery"})
		s.Equal(5, done.Step)
		s.Equal(int64(13500), done.TotalCents)

		var paymentType string
		var totalCents int64
		var scheduledAt time.Time
		err := s.DB.QueryRow(context.Background(),
			"SELECT payment_type, total_cents, scheduled_at FROM bookings WHERE id = $1", *step3.BookingID).
			Scan(&paymentType, &totalCents, &scheduledAt)
		require.NoError(s.T(), err)
		s.Equal("cash_on_delivery", paymentType)
		s.Equal(int64(13500), totalCents)
		s.Equal("11:00", scheduledAt.In(time.Local).Format("15:04"))

		var addonCount int
		err = s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM booking_addons WHERE booking_id = $1", *step3.BookingID).Scan(&addonCount)
		require.NoError(s.T(), err)
		s.Equal(2, addonCount)
	})

	s.Run("creates exactly one booking per wizard session", func() {
		start := s.startWizard()
		s.fillDetails(start.Token)
		s.next(start.Token, nil)

		first := s.next(start.Token, map[string]any{"paymentType": "cash_on_delivery"})
		require.NotNil(s.T(), first.BookingID)

		// the wizard is terminal now; another transition must not create more
		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost,
			wizardURL+"/"+start.Token.String()+"/next", nil, s.cookies)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already completed")

		var count int
		err := s.DB.QueryRow(context.Background(),
			"SELECT count(*) FROM bookings WHERE user_id = (SELECT id FROM users WHERE email = 'customer@example.com')").
			Scan(&count)
		require.NoError(s.T(), err)
		s.Equal(1, count)
	})
}
