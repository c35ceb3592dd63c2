package cooling_test

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bondiprof/internal/cooling"
)

func writeTable(dir, name, content string) string {
	path := filepath.Join(dir, name)
	Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	It("loads the shipped table", func() {
		tab, err := cooling.Load(filepath.Join("testdata", "cooltable.dat"))
		Expect(err).NotTo(HaveOccurred())
		Expect(tab.T).To(HaveLen(16))
		Expect(tab.Lambda).To(HaveLen(16))
		Expect(tab.T[0]).To(Equal(1.0e4))
		Expect(tab.Lambda[0]).To(Equal(1.0e-24))
	})

	It("skips comment and blank lines", func() {
		path := writeTable(GinkgoT().TempDir(), "t.dat", "# header\n\n1e4 1e-24\n\n# mid\n1e5 2e-22\n")
		tab, err := cooling.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(tab.T).To(Equal([]float64{1e4, 1e5}))
	})

	It("fails when the file is missing", func() {
		_, err := cooling.Load(filepath.Join(GinkgoT().TempDir(), "absent.dat"))
		var le *cooling.LoadError
		Expect(errors.As(err, &le)).To(BeTrue())
		Expect(le.Line).To(BeZero())
	})

	It("reports the offending line for a wrong column count", func() {
		path := writeTable(GinkgoT().TempDir(), "t.dat", "1e4 1e-24\n1e5 2e-22 bogus\n")
		_, err := cooling.Load(path)
		var le *cooling.LoadError
		Expect(errors.As(err, &le)).To(BeTrue())
		Expect(le.Line).To(Equal(2))
		Expect(le.Error()).To(ContainSubstring(":2:"))
	})

	It("reports the offending line for a non-numeric value", func() {
		path := writeTable(GinkgoT().TempDir(), "t.dat", "1e4 1e-24\nhot 2e-22\n")
		_, err := cooling.Load(path)
		var le *cooling.LoadError
		Expect(errors.As(err, &le)).To(BeTrue())
		Expect(le.Line).To(Equal(2))
	})

	It("rejects an empty table", func() {
		path := writeTable(GinkgoT().TempDir(), "t.dat", "# only comments\n")
		_, err := cooling.Load(path)
		Expect(errors.Is(err, cooling.ErrEmptyTable)).To(BeTrue())
	})

	It("rejects a single-row table", func() {
		path := writeTable(GinkgoT().TempDir(), "t.dat", "1e4 1e-24\n")
		_, err := cooling.Load(path)
		Expect(errors.Is(err, cooling.ErrEmptyTable)).To(BeTrue())
	})

	It("rejects unsorted temperatures", func() {
		path := writeTable(GinkgoT().TempDir(), "t.dat", "1e5 2e-22\n1e4 1e-24\n")
		_, err := cooling.Load(path)
		Expect(errors.Is(err, cooling.ErrUnsorted)).To(BeTrue())
	})
})

var _ = Describe("Interp", func() {
	var in *cooling.Interp

	BeforeEach(func() {
		tab, err := cooling.Load(filepath.Join("testdata", "cooltable.dat"))
		Expect(err).NotTo(HaveOccurred())
		in = tab.Interp()
	})

	It("is exact at every tabulated point", func() {
		tab, err := cooling.Load(filepath.Join("testdata", "cooltable.dat"))
		Expect(err).NotTo(HaveOccurred())
		for i, t := range tab.T {
			v, extrap := in.Eval(t)
			Expect(v).To(Equal(tab.Lambda[i]), "node %d", i)
			Expect(extrap).To(BeFalse())
		}
	})

	It("interpolates linearly between nodes", func() {
		// midway between (1e4, 1e-24) and (2e4, 3.5e-23)
		v, extrap := in.Eval(1.5e4)
		Expect(extrap).To(BeFalse())
		Expect(v).To(BeNumerically("~", (1.0e-24+3.5e-23)/2, 1e-30))
	})

	It("extrapolates along the end segments and says so", func() {
		// below the table: slope of the first segment
		slope := (3.5e-23 - 1.0e-24) / (2e4 - 1e4)
		v, extrap := in.Eval(5e3)
		Expect(extrap).To(BeTrue())
		Expect(v).To(BeNumerically("~", 1.0e-24+slope*(5e3-1e4), 1e-28))

		// above the table: slope of the last segment
		slope = (9.1e-23 - 6.6e-23) / (1e9 - 5e8)
		v, extrap = in.Eval(2e9)
		Expect(extrap).To(BeTrue())
		Expect(v).To(BeNumerically("~", 9.1e-23+slope*(2e9-1e9), 1e-28))
	})

	It("counts extrapolated lookups in EvalAll", func() {
		vals, n := in.EvalAll([]float64{5e3, 1e5, 1e7, 2e9})
		Expect(vals).To(HaveLen(4))
		Expect(n).To(Equal(2))
	})

	It("rejects mismatched or short inputs", func() {
		_, err := cooling.NewInterp([]float64{1}, []float64{1})
		Expect(err).To(MatchError(cooling.ErrEmptyTable))
		_, err = cooling.NewInterp([]float64{1, 2}, []float64{1})
		Expect(err).To(MatchError(cooling.ErrEmptyTable))
		_, err = cooling.NewInterp([]float64{2, 1}, []float64{1, 2})
		Expect(err).To(MatchError(cooling.ErrUnsorted))
	})
})
