// Copyright (C) 2026 Crash Override, Inc.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the FSF, either version 3 of the License, or (at your option) any later version.
// See the LICENSE file in the root of this repository for full license text or
// visit: <https://www.gnu.org/licenses/gpl-3.0.html>.

package sliceext

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type labels []string

var _ = Describe("Slice extensions", func() {
	Context("Shuffle", func() {
		It("should keep the same multiset of elements", func() {
			for range 100 {
				numbers := []int{1, 2, 3, 4, 5}
				Shuffle(numbers)
				Expect(numbers).To(ConsistOf(1, 2, 3, 4, 5))
			}
		})

		It("should keep duplicates", func() {
			values := Slice[string]{"a", "a", "b", "c", "c", "c"}
			values.Shuffle()
			Expect(values).To(ConsistOf("a", "a", "b", "c", "c", "c"))
		})

		It("should leave empty and single element slices untouched", func() {
			var empty []int
			Shuffle(empty)
			Expect(empty).To(BeEmpty())

			single := []int{42}
			Shuffle(single)
			Expect(single).To(Equal([]int{42}))
		})

		It("should accept named slice types", func() {
			l := labels{"x", "y", "z"}
			Shuffle(l)
			Expect(l).To(ConsistOf("x", "y", "z"))
		})

		It("should produce every permutation with similar frequency", func() {
			const rounds = 60000
			counts := map[string]int{}
			for range rounds {
				s := []int{1, 2, 3}
				Shuffle(s)
				counts[fmt.Sprint(s)]++
			}
			Expect(counts).To(HaveLen(6))
			for perm, n := range counts {
				Expect(n).To(BeNumerically("~", rounds/6, rounds/60), "permutation %s", perm)
			}
		})
	})

	Context("Choose", func() {
		It("should report nothing on an empty slice", func() {
			v, ok := Choose([]string{})
			Expect(ok).To(BeFalse())
			Expect(v).To(BeZero())

			_, ok = Slice[int](nil).Choose()
			Expect(ok).To(BeFalse())
		})

		It("should return an element of the slice without modifying it", func() {
			values := Slice[int]{10, 20, 30}
			for range 100 {
				v, ok := values.Choose()
				Expect(ok).To(BeTrue())
				Expect(values).To(ContainElement(v))
			}
			Expect(values).To(Equal(Slice[int]{10, 20, 30}))
		})

		It("should eventually select every element", func() {
			values := []string{"a", "b", "c", "d"}
			seen := map[string]bool{}
			for range 1000 {
				v, _ := Choose(values)
				seen[v] = true
			}
			Expect(seen).To(HaveLen(len(values)))
		})
	})

	Context("ChooseMut", func() {
		It("should return nil on an empty slice", func() {
			Expect(ChooseMut([]int{})).To(BeNil())
			Expect(Slice[int]{}.ChooseMut()).To(BeNil())
		})

		It("should allow replacing the chosen element in place", func() {
			numbers := Slice[int]{1, 2, 3, 4, 5}
			p := numbers.ChooseMut()
			Expect(p).NotTo(BeNil())
			old := *p
			*p = 10

			Expect(numbers).To(ContainElement(10))
			Expect(numbers).NotTo(ContainElement(old))
			Expect(numbers).To(HaveLen(5))
		})

		It("should point into the slice", func() {
			numbers := []int{7}
			Expect(ChooseMut(numbers)).To(BeIdenticalTo(&numbers[0]))
		})
	})

	Context("ChooseIndex", func() {
		It("should stay in bounds", func() {
			for range 1000 {
				Expect(ChooseIndex(3)).To(And(BeNumerically(">=", 0), BeNumerically("<", 3)))
			}
		})

		It("should panic on an empty range", func() {
			Expect(func() { ChooseIndex(0) }).To(Panic())
		})
	})
})
