package service

// Source-code exercise files. The planted issues must stay in sync with the
// grading data: bug counts and issue counts are what gets graded.

func shoppingCartCode() (FileAsset, error) {
	code := `
# E-Commerce Shopping Cart Bug Fix Challenge
# The following Python code has several bugs that are causing issues in production

class ShoppingCart:
    def __init__(self):
        self.items = []
        self.discount = 0

    def add_item(self, name, price, quantity):
        item = {
            'name': name,
            'price': price,
            'quantity': quantity
        }
        self.items.append(item)

    def remove_item(self, name):
        for item in self.items:
            if item['name'] = name:  # BUG 1: Assignment instead of comparison
                self.items.remove(item)
                break

    def calculate_total(self):
        total = 0
        for item in self.items:
            total += item['price'] * item['quantity']

        # Apply discount
        if self.discount > 0:
            total = total - (total * self.discount / 100)

        return total

    def apply_discount(self, discount_percent):
        if discount_percent > 100:  # BUG 2: Should also check if negative
            self.discount = 0
        else:
            self.discount = discount_percent

    def get_item_count(self):
        count = 0
        for item in self.items:
            count += item['quantity']
        return count

    def checkout(self):
        if len(self.items) == 0:
            return "Cart is empty"

        total = self.calculate_total()
        # BUG 3: No validation for minimum order amount
        return f"Order total: ${total:.2f}"

# Test the shopping cart
cart = ShoppingCart()
cart.add_item("Laptop", 999.99, 1)
cart.add_item("Mouse", 29.99, 2)
cart.apply_discount(10)

print(f"Items in cart: {cart.get_item_count()}")
print(f"Total: {cart.checkout()}")

# Find and list all the bugs in the code above
`
	return textAsset("shopping_cart_debug.py", "text/x-python-script", code)
}

func calculatorClassCode() (FileAsset, error) {
	code := `
class Calculator:
    def __init__(self):
        self.history = []

    def add(self, a, b):
        result = a + b
        self.history.append(f"{a} + {b} = {result}")
        return result

    def subtract(self, a, b):
        result = a - b
        self.history.append(f"{a} - {b} = {result}")
        return result

    def multiply(self, a, b):
        result = a * b
        self.history.append(f"{a} * {b} = {result}")
        return result

    def divide(self, a, b):
        if b == 0:
            raise ValueError("Cannot divide by zero")
        result = a / b
        self.history.append(f"{a} / {b} = {result}")
        return result

    def power(self, a, b):
        result = a ** b
        self.history.append(f"{a} ^ {b} = {result}")
        return result

    def square_root(self, a):
        if a < 0:
            raise ValueError("Cannot calculate square root of negative number")
        result = a ** 0.5
        self.history.append(f"√{a} = {result}")
        return result

    def get_history(self):
        return self.history

    def clear_history(self):
        self.history = []

# Test cases to verify:
# 1. Basic arithmetic operations
# 2. Division by zero handling
# 3. Square root of negative numbers
# 4. History tracking
# 5. Edge cases (very large numbers, decimals)
# 6. Input validation
# 7. Memory management

How many test cases would you write to thoroughly test this calculator class?
`
	return textAsset("calculator_class.py", "text/x-python-script", code)
}

func webAppCode() (FileAsset, error) {
	code := `
# Flask Web Application
from flask import Flask, render_template, request, jsonify
import os
import logging

app = Flask(__name__)

# Configure logging
logging.basicConfig(level=logging.INFO)
logger = logging.getLogger(__name__)

@app.route('/')
def home():
    return render_template('index.html')

@app.route('/api/health')
def health_check():
    return jsonify({"status": "healthy", "version": "1.0.0"})

@app.route('/api/users', methods=['GET'])
def get_users():
    # Simulate database query
    users = [
        {"id": 1, "name": "John Doe", "email": "john@example.com"},
        {"id": 2, "name": "Jane Smith", "email": "jane@example.com"}
    ]
    return jsonify(users)

@app.route('/api/users', methods=['POST'])
def create_user():
    data = request.get_json()
    if not data or 'name' not in data or 'email' not in data:
        return jsonify({"error": "Name and email are required"}), 400

    # Simulate user creation
    new_user = {
        "id": 3,
        "name": data['name'],
        "email": data['email']
    }
    return jsonify(new_user), 201

if __name__ == '__main__':
    port = int(os.environ.get('PORT', 5000))
    app.run(host='0.0.0.0', port=port, debug=True)
`
	return textAsset("app.py", "text/x-python-script", code)
}

func iosAppCode() (FileAsset, error) {
	code := `
// iOS App Performance Issues
import UIKit
import Foundation

class ViewController: UIViewController {
    @IBOutlet weak var tableView: UITableView!
    @IBOutlet weak var imageView: UIImageView!

    var dataArray: [String] = []
    var images: [UIImage] = []

    override func viewDidLoad() {
        super.viewDidLoad()
        setupTableView()
        loadData()
        loadImages()
    }

    func setupTableView() {
        tableView.delegate = self
        tableView.dataSource = self
        // ISSUE 1: No cell reuse identifier
        tableView.register(UITableViewCell.self, forCellReuseIdentifier: "Cell")
    }

    func loadData() {
        // ISSUE 2: Loading data on main thread
        for i in 0..<10000 {
            dataArray.append("Item \(i)")
        }
        tableView.reloadData()
    }

    func loadImages() {
        // ISSUE 3: Loading large images synchronously
        for i in 0..<100 {
            if let image = UIImage(named: "large_image_\(i).jpg") {
                images.append(image)
            }
        }
    }

    func processData() {
        // ISSUE 4: Heavy computation on main thread
        var result = 0
        for i in 0..<1000000 {
            result += i * i
        }
        print("Result: \(result)")
    }

    @IBAction func buttonTapped(_ sender: UIButton) {
        // ISSUE 5: No memory management
        let largeArray = Array(0..<1000000)
        processData()
    }
}

extension ViewController: UITableViewDataSource, UITableViewDelegate {
    func tableView(_ tableView: UITableView, numberOfRowsInSection section: Int) -> Int {
        return dataArray.count
    }

    func tableView(_ tableView: UITableView, cellForRowAt indexPath: IndexPath) -> UITableViewCell {
        // ISSUE 6: Creating new cell every time
        let cell = UITableViewCell(style: .default, reuseIdentifier: "Cell")
        cell.textLabel?.text = dataArray[indexPath.row]

        // ISSUE 7: Setting image without optimization
        if indexPath.row < images.count {
            cell.imageView?.image = images[indexPath.row]
        }

        return cell
    }
}

// ISSUE 8: No proper memory management
class DataManager {
    var cache: [String: Any] = [:]

    func storeData(_ data: Any, forKey key: String) {
        cache[key] = data
        // No cache size limit or cleanup
    }
}

How many performance issues can you identify in this iOS app code?
`
	return textAsset("ios_app_code.swift", "text/x-swift", code)
}

func reactNativeCode() (FileAsset, error) {
	code := `
// React Native App with State Management Issues
import React, { useState, useEffect } from 'react';
import { View, Text, Button, FlatList, StyleSheet } from 'react-native';

const App = () => {
  // ISSUE 1: Multiple useState hooks for related state
  const [users, setUsers] = useState([]);
  const [loading, setLoading] = useState(false);
  const [error, setError] = useState(null);
  const [selectedUser, setSelectedUser] = useState(null);
  const [userCount, setUserCount] = useState(0);
  const [filter, setFilter] = useState('');
  const [sortBy, setSortBy] = useState('name');

  // ISSUE 2: No proper state management structure
  const [appState, setAppState] = useState({
    users: [],
    loading: false,
    error: null,
    selectedUser: null,
    userCount: 0,
    filter: '',
    sortBy: 'name'
  });

  useEffect(() => {
    // ISSUE 3: No cleanup for async operations
    fetchUsers();
  }, []);

  const fetchUsers = async () => {
    setLoading(true);
    try {
      const response = await fetch('https://api.example.com/users');
      const data = await response.json();
      setUsers(data);
      setUserCount(data.length);
    } catch (err) {
      setError(err.message);
    } finally {
      setLoading(false);
    }
  };

  const addUser = (user) => {
    // ISSUE 4: Direct state mutation
    users.push(user);
    setUsers(users);
    setUserCount(users.length);
  };

  const updateUser = (id, updates) => {
    // ISSUE 5: Inefficient state update
    const updatedUsers = users.map(user =>
      user.id === id ? { ...user, ...updates } : user
    );
    setUsers(updatedUsers);
  };

  const deleteUser = (id) => {
    // ISSUE 6: No optimistic updates
    fetch(` + "`https://api.example.com/users/${id}`" + `, { method: 'DELETE' })
      .then(() => {
        setUsers(users.filter(user => user.id !== id));
        setUserCount(users.length - 1);
      });
  };

  const filteredUsers = users.filter(user =>
    user.name.toLowerCase().includes(filter.toLowerCase())
  );

  const sortedUsers = filteredUsers.sort((a, b) =>
    a[sortBy] > b[sortBy] ? 1 : -1
  );

  return (
    <View style={styles.container}>
      <Text>Users: {userCount}</Text>
      {loading && <Text>Loading...</Text>}
      {error && <Text>Error: {error}</Text>}

      <FlatList
        data={sortedUsers}
        keyExtractor={(item) => item.id.toString()}
        renderItem={({ item }) => (
          <View style={styles.userItem}>
            <Text>{item.name}</Text>
            <Button title="Edit" onPress={() => updateUser(item.id, { name: 'Updated' })} />
            <Button title="Delete" onPress={() => deleteUser(item.id)} />
          </View>
        )}
      />
    </View>
  );
};

// ISSUE 7: No proper state management solution
// Should use Redux, Context API, or Zustand

const styles = StyleSheet.create({
  container: {
    flex: 1,
    padding: 20,
  },
  userItem: {
    flexDirection: 'row',
    justifyContent: 'space-between',
    alignItems: 'center',
    padding: 10,
    borderBottomWidth: 1,
  },
});

export default App;

// How many reducers would you create for proper state management?
`
	return textAsset("react_native_app.js", "text/javascript", code)
}
