package gateway

import "io"

// progressReader reports transfer progress as the transport drains the
// request body. Reported percentages never move backwards even if the
// caller supplied an undersized total.
type progressReader struct {
	r       io.Reader
	total   int64
	sent    int64
	lastPct float64
	fn      func(float64)
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 && p.fn != nil && p.total > 0 {
		p.sent += int64(n)
		pct := float64(p.sent) / float64(p.total) * 100
		if pct > 100 {
			pct = 100
		}
		if pct > p.lastPct {
			p.lastPct = pct
			p.fn(pct)
		}
	}
	return n, err
}
