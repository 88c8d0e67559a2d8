package stoich_test

import (
	"fmt"
	"log"

	"github.com/aretw0/stoich"
)

func ExampleBalance() {
	res, err := stoich.Balance("Fe + O2 = Fe2O3")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res)
	// Output: 4Fe + 3O2 = 2Fe2O3
}

func ExampleParseFormula() {
	comp, err := stoich.ParseFormula("CuSO4·5H2O")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(comp.Count("H"), comp.Count("O"))
	// Output: 10 9
}
