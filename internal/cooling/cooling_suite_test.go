package cooling_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCooling(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cooling Suite")
}
