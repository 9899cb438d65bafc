package discovery

import "testing"

func TestDefaultGRPCAddr(t *testing.T) {
	cases := map[string]string{
		ServiceRaffle: "raffle:8070",
		ServiceKeeper: "keeper:8071",
	}
	for service, want := range cases {
		if got := DefaultGRPCAddr(service); got != want {
			t.Fatalf("DefaultGRPCAddr(%q) = %q, want %q", service, got, want)
		}
	}
}

func TestDefaultGRPCAddrUnknownService(t *testing.T) {
	if got := DefaultGRPCAddr("unknown"); got != "" {
		t.Fatalf("DefaultGRPCAddr(unknown) = %q, want empty", got)
	}
}

func TestDefaultHTTPAddr(t *testing.T) {
	if got := DefaultHTTPAddr(ServiceJaeger); got != "jaeger:16686" {
		t.Fatalf("DefaultHTTPAddr(jaeger) = %q, want %q", got, "jaeger:16686")
	}
}

func TestOrDefaultGRPCAddr(t *testing.T) {
	if got := OrDefaultGRPCAddr(" custom:9000 ", ServiceRaffle); got != "custom:9000" {
		t.Fatalf("expected explicit grpc addr to win, got %q", got)
	}
	if got := OrDefaultGRPCAddr("", ServiceRaffle); got != "raffle:8070" {
		t.Fatalf("expected default grpc addr, got %q", got)
	}
}
