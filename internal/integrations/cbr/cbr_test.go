package cbr

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dan9191/calc-service/internal/config"
	"github.com/sirupsen/logrus"
)

const sampleResponse = `<?xml version="1.0" encoding="utf-8"?>
<soap:Envelope xmlns:soap="http://www.w3.org/2003/05/soap-envelope">
  <soap:Body>
    <KeyRateResponse xmlns="http://web.cbr.ru/">
      <KeyRateResult>
        <diffgr:diffgram xmlns:diffgr="urn:schemas-microsoft-com:xml-diffgram-v1">
          <KeyRate xmlns="">
            <KR><DT>2024-07-29T00:00:00+03:00</DT><Rate>18.00</Rate></KR>
            <KR><DT>2024-07-26T00:00:00+03:00</DT><Rate>16.00</Rate></KR>
          </KeyRate>
        </diffgr:diffgram>
      </KeyRateResult>
    </KeyRateResponse>
  </soap:Body>
</soap:Envelope>`

func TestParseXMLResponse(t *testing.T) {
	got, err := parseXMLResponse([]byte(sampleResponse))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.Rate != 18 {
		t.Errorf("rate = %v, want 18", got.Rate)
	}
	if got.Date.Format("2006-01-02") != "2024-07-29" {
		t.Errorf("date = %v", got.Date)
	}
}

func TestParseXMLResponse_Errors(t *testing.T) {
	for name, body := range map[string]string{
		"not xml":  "{}",
		"no rates": `<root><diffgram><KeyRate></KeyRate></diffgram></root>`,
		"no rate":  `<root><diffgram><KeyRate><KR><DT>x</DT></KR></KeyRate></diffgram></root>`,
		"bad rate": `<root><diffgram><KeyRate><KR><Rate>abc</Rate></KR></KeyRate></diffgram></root>`,
	} {
		if _, err := parseXMLResponse([]byte(body)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestGetKeyRate(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := NewCBRClient(&config.Config{CBRURL: srv.URL}, log)
	c.now = func() time.Time { return time.Date(2024, 7, 30, 0, 0, 0, 0, time.UTC) }

	rate, err := c.GetKeyRate(context.Background())
	if err != nil {
		t.Fatalf("GetKeyRate: %v", err)
	}
	if rate.Rate != 18 {
		t.Errorf("rate = %v", rate.Rate)
	}
	if !strings.Contains(gotBody, "<fromDate>2024-06-30</fromDate>") || !strings.Contains(gotBody, "<ToDate>2024-07-30</ToDate>") {
		t.Errorf("request body = %s", gotBody)
	}
}

func TestGetKeyRate_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	c := NewCBRClient(&config.Config{CBRURL: srv.URL}, log)
	if _, err := c.GetKeyRate(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
