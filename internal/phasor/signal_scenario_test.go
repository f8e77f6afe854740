package phasor_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/phasorsim/internal/phasor"
)

var _ = Describe("Signal", func() {
	Context("standing wave with beta = 0 over one period", func() {
		var sig *phasor.Signal

		BeforeEach(func() {
			var err error
			sig, err = phasor.New(2.0, 0.0, 0.0, 1.0,
				phasor.WithMaxTime(6.283185), phasor.WithMaxSpace(1.0))
			Expect(err).NotTo(HaveOccurred())
		})

		It("is constant +2 over space at t = 0", func() {
			Expect(sig.SetCurrentTime(0)).To(Succeed())
			for _, v := range sig.CurrentRow() {
				Expect(v).To(BeNumerically("~", 2.0, 1e-9))
			}
		})

		It("is constant -2 over space at t = pi", func() {
			Expect(sig.SetCurrentTime(math.Pi)).To(Succeed())
			for _, v := range sig.CurrentRow() {
				Expect(v).To(BeNumerically("~", -2.0, 1e-4))
			}
		})

		It("spreads the markers across the whole window", func() {
			idx := sig.SpaceSampleIndices()
			Expect(idx).To(HaveLen(8))
			Expect(idx[0]).To(Equal(0))
			Expect(idx[7]).To(Equal(phasor.GridSize - 1))
		})
	})

	Context("one wavelength in a unit window", func() {
		It("places the markers from the first to the last sample", func() {
			sig, err := phasor.New(1, 0, 2*math.Pi, 2*math.Pi)
			Expect(err).NotTo(HaveOccurred())
			idx := sig.SpaceSampleIndices()
			Expect(idx).To(HaveLen(8))
			Expect(idx[0]).To(Equal(0))
			Expect(idx[7]).To(Equal(phasor.GridSize - 1))
		})
	})

	Context("cursor past the end of the time window", func() {
		It("snaps to the last grid index without error", func() {
			sig, err := phasor.New(1, 0, 1, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(sig.SetCurrentTime(sig.MaxTime() + 100)).To(Succeed())
			Expect(sig.CurrentTimeIndex()).To(Equal(phasor.GridSize - 1))
		})
	})

	Context("construction with an empty time window", func() {
		It("reports ErrInvalidParameter", func() {
			sig, err := phasor.New(1, 0, 1, 1, phasor.WithMaxTime(0))
			Expect(sig).To(BeNil())
			Expect(err).To(MatchError(phasor.ErrInvalidParameter))
		})
	})

	Context("changing magnitude", func() {
		It("rescales the current phasor and keeps the cursor", func() {
			sig, err := phasor.New(1, 0.2, 3, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(sig.SetCurrentTime(1.5)).To(Succeed())
			Expect(sig.SetCurrentLoc(0.4)).To(Succeed())
			ti, zi := sig.CurrentTimeIndex(), sig.CurrentLocIndex()
			before := sig.CurrentValue()

			Expect(sig.SetMagnitude(3)).To(Succeed())
			Expect(sig.CurrentTimeIndex()).To(Equal(ti))
			Expect(sig.CurrentLocIndex()).To(Equal(zi))
			Expect(sig.CurrentValue()).To(BeNumerically("~", 3*before, 1e-9))
		})
	})
})
