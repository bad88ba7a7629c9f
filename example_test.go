package semver_test

import (
	"fmt"
	"log"

	"github.com/dignifiedquire/semver2"
)

func Example() {
	v, err := semver.Parse("1.2.3-beta.9+acd.v3.2")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("version:", v)
	fmt.Println("prerelease:", v.Prerelease[0], v.Prerelease[1].Number)

	loose, err := semver.Parse("001.20.0301")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("loose:", loose)

	implicit, err := semver.Parse("1.2.3foo")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("implicit:", implicit)

	// Output:
	// version: 1.2.3-beta.9+acd.v3.2
	// prerelease: beta 9
	// loose: 1.20.301
	// implicit: 1.2.3-foo
}
